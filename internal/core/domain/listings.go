package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus — состояние потребности или предложения.
// Переход open → bound необратим и выполняется только созданием сделки.
type ListingStatus string

const (
	ListingStatusOpen  ListingStatus = "open"
	ListingStatusBound ListingStatus = "bound"
)

// Offer — предложение: клиент продает конкретный объект по конкретной цене.
type Offer struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	RealtorID  uuid.UUID
	PropertyID uuid.UUID
	Price      int64
	Status     ListingStatus
}

// Validate проверяет цену предложения.
func (o Offer) Validate() error {
	if o.Price <= 0 {
		return InvalidInput("offer price must be positive")
	}
	return nil
}

// OfferDetails — предложение вместе со связанными записями,
// как его отдает хранилище для чтения и матчинга.
type OfferDetails struct {
	Offer
	Client   Client
	Realtor  Realtor
	Property Property
}

// Need — потребность: профиль спроса клиента-покупателя.
// Отсутствующая граница диапазона означает «без ограничения».
type Need struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	RealtorID    uuid.UUID
	PropertyType PropertyType
	Address      string
	MinPrice     int64
	MaxPrice     int64
	MinArea      *float64
	MaxArea      *float64
	MinRooms     *int
	MaxRooms     *int
	MinFloor     *int
	MaxFloor     *int
	MinFloors    *int
	MaxFloors    *int
	MinLandArea  *float64
	MaxLandArea  *float64
	Status       ListingStatus
}

// Validate проверяет категорию и согласованность диапазонов.
func (n Need) Validate() error {
	if !n.PropertyType.Valid() {
		return InvalidInput("unknown property type %q", n.PropertyType)
	}
	if n.MinPrice <= 0 || n.MaxPrice <= 0 {
		return InvalidInput("price bounds must be positive")
	}
	if n.MinPrice > n.MaxPrice {
		return InvalidInput("min price cannot exceed max price")
	}
	if floatRangeInverted(n.MinArea, n.MaxArea) {
		return InvalidInput("min area cannot exceed max area")
	}
	if intRangeInverted(n.MinRooms, n.MaxRooms) {
		return InvalidInput("min rooms cannot exceed max rooms")
	}
	if intRangeInverted(n.MinFloor, n.MaxFloor) {
		return InvalidInput("min floor cannot exceed max floor")
	}
	if intRangeInverted(n.MinFloors, n.MaxFloors) {
		return InvalidInput("min floors cannot exceed max floors")
	}
	if floatRangeInverted(n.MinLandArea, n.MaxLandArea) {
		return InvalidInput("min land area cannot exceed max land area")
	}
	return nil
}

// NeedDetails — потребность вместе со связанными записями.
type NeedDetails struct {
	Need
	Client  Client
	Realtor Realtor
}

// Deal — связка ровно одной потребности с ровно одним предложением.
// Каждая потребность и каждое предложение участвуют максимум в одной сделке.
type Deal struct {
	ID        uuid.UUID
	NeedID    uuid.UUID
	OfferID   uuid.UUID
	CreatedAt time.Time
}

// DealDetails — сделка со всеми связями, необходимыми для расчета комиссий.
type DealDetails struct {
	Deal
	Need  NeedDetails
	Offer OfferDetails
}

func floatRangeInverted(min, max *float64) bool {
	return min != nil && max != nil && *min > *max
}

func intRangeInverted(min, max *int) bool {
	return min != nil && max != nil && *min > *max
}
