package rest

import (
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Клиенты ---

type ClientRequest struct {
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Patronymic string `json:"patronymic"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (req ClientRequest) toDomain(id uuid.UUID) domain.Client {
	return domain.Client{
		ID:         id,
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Email:      req.Email,
	}
}

type ClientResponse struct {
	ID         string `json:"id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Patronymic string `json:"patronymic"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	FullName   string `json:"full_name"`
}

func toClientResponse(c domain.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID.String(),
		LastName:   c.LastName,
		FirstName:  c.FirstName,
		Patronymic: c.Patronymic,
		Phone:      c.Phone,
		Email:      c.Email,
		FullName:   c.FullName(),
	}
}

func toClientResponses(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, toClientResponse(c))
	}
	return res
}

// --- Риэлторы ---

type RealtorRequest struct {
	LastName        string   `json:"last_name"`
	FirstName       string   `json:"first_name"`
	Patronymic      string   `json:"patronymic"`
	CommissionShare *float64 `json:"commission_share"`
}

func (req RealtorRequest) toDomain(id uuid.UUID) domain.Realtor {
	realtor := domain.Realtor{
		ID:         id,
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Patronymic: req.Patronymic,
	}
	if req.CommissionShare != nil {
		share := decimal.NewFromFloat(*req.CommissionShare)
		realtor.CommissionShare = &share
	}
	return realtor
}

type RealtorResponse struct {
	ID              string   `json:"id"`
	LastName        string   `json:"last_name"`
	FirstName       string   `json:"first_name"`
	Patronymic      string   `json:"patronymic"`
	CommissionShare *float64 `json:"commission_share"`
	FullName        string   `json:"full_name"`
}

func toRealtorResponse(r domain.Realtor) RealtorResponse {
	res := RealtorResponse{
		ID:         r.ID.String(),
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		Patronymic: r.Patronymic,
		FullName:   r.FullName(),
	}
	if r.CommissionShare != nil {
		share := r.CommissionShare.InexactFloat64()
		res.CommissionShare = &share
	}
	return res
}

func toRealtorResponses(realtors []domain.Realtor) []RealtorResponse {
	res := make([]RealtorResponse, 0, len(realtors))
	for _, r := range realtors {
		res = append(res, toRealtorResponse(r))
	}
	return res
}

// --- Объекты недвижимости ---

// PropertyRequest — плоская форма объекта: специфичные атрибуты
// раскладываются по варианту в зависимости от типа.
type PropertyRequest struct {
	Type            string   `json:"type"`
	City            string   `json:"city"`
	Street          string   `json:"street"`
	HouseNumber     string   `json:"house_number"`
	ApartmentNumber string   `json:"apartment_number"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Floor           *int     `json:"floor"`
	Floors          *int     `json:"floors"`
	Rooms           *int     `json:"rooms"`
	Area            *float64 `json:"area"`
}

func (req PropertyRequest) toDomain(id uuid.UUID) domain.Property {
	property := domain.Property{
		ID:              id,
		Type:            domain.PropertyType(req.Type),
		City:            req.City,
		Street:          req.Street,
		HouseNumber:     req.HouseNumber,
		ApartmentNumber: req.ApartmentNumber,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	switch property.Type {
	case domain.PropertyTypeApartment:
		property.Details = domain.ApartmentDetails{Floor: req.Floor, Rooms: req.Rooms, Area: req.Area}
	case domain.PropertyTypeHouse:
		property.Details = domain.HouseDetails{Floors: req.Floors, Rooms: req.Rooms, Area: req.Area}
	case domain.PropertyTypeLand:
		property.Details = domain.LandDetails{Area: req.Area}
	}
	return property
}

type PropertyResponse struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	City            string   `json:"city"`
	Street          string   `json:"street"`
	HouseNumber     string   `json:"house_number"`
	ApartmentNumber string   `json:"apartment_number,omitempty"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Floor           *int     `json:"floor,omitempty"`
	Floors          *int     `json:"floors,omitempty"`
	Rooms           *int     `json:"rooms,omitempty"`
	Area            *float64 `json:"area,omitempty"`
	Address         string   `json:"address"`
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:              p.ID.String(),
		Type:            string(p.Type),
		City:            p.City,
		Street:          p.Street,
		HouseNumber:     p.HouseNumber,
		ApartmentNumber: p.ApartmentNumber,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Floor:           p.Floor(),
		Floors:          p.Floors(),
		Rooms:           p.Rooms(),
		Area:            p.Area(),
		Address:         p.Address(),
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		res = append(res, toPropertyResponse(p))
	}
	return res
}

// CreatedPropertyResponse — ответ создания с признаком вероятного дубля.
type CreatedPropertyResponse struct {
	Property          PropertyResponse `json:"property"`
	ProbableDuplicate bool             `json:"probable_duplicate"`
}

// --- Предложения ---

type OfferRequest struct {
	ClientID   uuid.UUID `json:"client_id"`
	RealtorID  uuid.UUID `json:"realtor_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Price      int64     `json:"price"`
}

func (req OfferRequest) toDomain(id uuid.UUID) domain.Offer {
	return domain.Offer{
		ID:         id,
		ClientID:   req.ClientID,
		RealtorID:  req.RealtorID,
		PropertyID: req.PropertyID,
		Price:      req.Price,
	}
}

type OfferResponse struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	RealtorID  string `json:"realtor_id"`
	PropertyID string `json:"property_id"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
}

func toOfferResponse(o domain.Offer) OfferResponse {
	return OfferResponse{
		ID:         o.ID.String(),
		ClientID:   o.ClientID.String(),
		RealtorID:  o.RealtorID.String(),
		PropertyID: o.PropertyID.String(),
		Price:      o.Price,
		Status:     string(o.Status),
	}
}

type OfferDetailsResponse struct {
	OfferResponse
	Client   ClientResponse   `json:"client"`
	Realtor  RealtorResponse  `json:"realtor"`
	Property PropertyResponse `json:"property"`
}

func toOfferDetailsResponse(o domain.OfferDetails) OfferDetailsResponse {
	return OfferDetailsResponse{
		OfferResponse: toOfferResponse(o.Offer),
		Client:        toClientResponse(o.Client),
		Realtor:       toRealtorResponse(o.Realtor),
		Property:      toPropertyResponse(o.Property),
	}
}

func toOfferDetailsResponses(offers []domain.OfferDetails) []OfferDetailsResponse {
	res := make([]OfferDetailsResponse, 0, len(offers))
	for _, o := range offers {
		res = append(res, toOfferDetailsResponse(o))
	}
	return res
}

// --- Потребности ---

type NeedRequest struct {
	ClientID     uuid.UUID `json:"client_id"`
	RealtorID    uuid.UUID `json:"realtor_id"`
	PropertyType string    `json:"property_type"`
	Address      string    `json:"address"`
	MinPrice     int64     `json:"min_price"`
	MaxPrice     int64     `json:"max_price"`
	MinArea      *float64  `json:"min_area"`
	MaxArea      *float64  `json:"max_area"`
	MinRooms     *int      `json:"min_rooms"`
	MaxRooms     *int      `json:"max_rooms"`
	MinFloor     *int      `json:"min_floor"`
	MaxFloor     *int      `json:"max_floor"`
	MinFloors    *int      `json:"min_floors"`
	MaxFloors    *int      `json:"max_floors"`
	MinLandArea  *float64  `json:"min_land_area"`
	MaxLandArea  *float64  `json:"max_land_area"`
}

func (req NeedRequest) toDomain(id uuid.UUID) domain.Need {
	return domain.Need{
		ID:           id,
		ClientID:     req.ClientID,
		RealtorID:    req.RealtorID,
		PropertyType: domain.PropertyType(req.PropertyType),
		Address:      req.Address,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		MinArea:      req.MinArea,
		MaxArea:      req.MaxArea,
		MinRooms:     req.MinRooms,
		MaxRooms:     req.MaxRooms,
		MinFloor:     req.MinFloor,
		MaxFloor:     req.MaxFloor,
		MinFloors:    req.MinFloors,
		MaxFloors:    req.MaxFloors,
		MinLandArea:  req.MinLandArea,
		MaxLandArea:  req.MaxLandArea,
	}
}

type NeedResponse struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"client_id"`
	RealtorID    string   `json:"realtor_id"`
	PropertyType string   `json:"property_type"`
	Address      string   `json:"address,omitempty"`
	MinPrice     int64    `json:"min_price"`
	MaxPrice     int64    `json:"max_price"`
	MinArea      *float64 `json:"min_area,omitempty"`
	MaxArea      *float64 `json:"max_area,omitempty"`
	MinRooms     *int     `json:"min_rooms,omitempty"`
	MaxRooms     *int     `json:"max_rooms,omitempty"`
	MinFloor     *int     `json:"min_floor,omitempty"`
	MaxFloor     *int     `json:"max_floor,omitempty"`
	MinFloors    *int     `json:"min_floors,omitempty"`
	MaxFloors    *int     `json:"max_floors,omitempty"`
	MinLandArea  *float64 `json:"min_land_area,omitempty"`
	MaxLandArea  *float64 `json:"max_land_area,omitempty"`
	Status       string   `json:"status"`
}

func toNeedResponse(n domain.Need) NeedResponse {
	return NeedResponse{
		ID:           n.ID.String(),
		ClientID:     n.ClientID.String(),
		RealtorID:    n.RealtorID.String(),
		PropertyType: string(n.PropertyType),
		Address:      n.Address,
		MinPrice:     n.MinPrice,
		MaxPrice:     n.MaxPrice,
		MinArea:      n.MinArea,
		MaxArea:      n.MaxArea,
		MinRooms:     n.MinRooms,
		MaxRooms:     n.MaxRooms,
		MinFloor:     n.MinFloor,
		MaxFloor:     n.MaxFloor,
		MinFloors:    n.MinFloors,
		MaxFloors:    n.MaxFloors,
		MinLandArea:  n.MinLandArea,
		MaxLandArea:  n.MaxLandArea,
		Status:       string(n.Status),
	}
}

type NeedDetailsResponse struct {
	NeedResponse
	Client  ClientResponse  `json:"client"`
	Realtor RealtorResponse `json:"realtor"`
}

func toNeedDetailsResponse(n domain.NeedDetails) NeedDetailsResponse {
	return NeedDetailsResponse{
		NeedResponse: toNeedResponse(n.Need),
		Client:       toClientResponse(n.Client),
		Realtor:      toRealtorResponse(n.Realtor),
	}
}

func toNeedDetailsResponses(needs []domain.NeedDetails) []NeedDetailsResponse {
	res := make([]NeedDetailsResponse, 0, len(needs))
	for _, n := range needs {
		res = append(res, toNeedDetailsResponse(n))
	}
	return res
}

// --- Сделки ---

type DealRequest struct {
	NeedID  uuid.UUID `json:"need_id"`
	OfferID uuid.UUID `json:"offer_id"`
}

type DealResponse struct {
	ID        string    `json:"id"`
	NeedID    string    `json:"need_id"`
	OfferID   string    `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toDealResponse(d domain.Deal) DealResponse {
	return DealResponse{
		ID:        d.ID.String(),
		NeedID:    d.NeedID.String(),
		OfferID:   d.OfferID.String(),
		CreatedAt: d.CreatedAt,
	}
}

type DealDetailsResponse struct {
	DealResponse
	Need  NeedDetailsResponse  `json:"need"`
	Offer OfferDetailsResponse `json:"offer"`
}

func toDealDetailsResponse(d domain.DealDetails) DealDetailsResponse {
	return DealDetailsResponse{
		DealResponse: toDealResponse(d.Deal),
		Need:         toNeedDetailsResponse(d.Need),
		Offer:        toOfferDetailsResponse(d.Offer),
	}
}

func toDealDetailsResponses(deals []domain.DealDetails) []DealDetailsResponse {
	res := make([]DealDetailsResponse, 0, len(deals))
	for _, d := range deals {
		res = append(res, toDealDetailsResponse(d))
	}
	return res
}

// CommissionBreakdownResponse — суммы в денежном формате с двумя знаками.
type CommissionBreakdownResponse struct {
	SellerCommission     string `json:"seller_commission"`
	BuyerCommission      string `json:"buyer_commission"`
	SellerRealtorPayment string `json:"seller_realtor_payment"`
	CompanyPaymentSeller string `json:"company_payment_seller"`
	BuyerRealtorPayment  string `json:"buyer_realtor_payment"`
	CompanyPaymentBuyer  string `json:"company_payment_buyer"`
}

func toCommissionBreakdownResponse(b domain.CommissionBreakdown) CommissionBreakdownResponse {
	return CommissionBreakdownResponse{
		SellerCommission:     b.SellerCommission.StringFixed(2),
		BuyerCommission:      b.BuyerCommission.StringFixed(2),
		SellerRealtorPayment: b.SellerRealtorPayment.StringFixed(2),
		CompanyPaymentSeller: b.CompanyPaymentSeller.StringFixed(2),
		BuyerRealtorPayment:  b.BuyerRealtorPayment.StringFixed(2),
		CompanyPaymentBuyer:  b.CompanyPaymentBuyer.StringFixed(2),
	}
}

// --- Действия риэлторов ---

type ActRequest struct {
	DateTime time.Time `json:"date_time"`
	Duration int       `json:"duration"`
	Type     string    `json:"type"`
	Comment  string    `json:"comment"`
}

func (req ActRequest) toDomain(id uuid.UUID) domain.Act {
	return domain.Act{
		ID:       id,
		DateTime: req.DateTime,
		Duration: req.Duration,
		Type:     domain.ActType(req.Type),
		Comment:  req.Comment,
	}
}

type ActResponse struct {
	ID       string    `json:"id"`
	DateTime time.Time `json:"date_time"`
	Duration int       `json:"duration"`
	Type     string    `json:"type"`
	Comment  string    `json:"comment,omitempty"`
}

func toActResponse(a domain.Act) ActResponse {
	return ActResponse{
		ID:       a.ID.String(),
		DateTime: a.DateTime,
		Duration: a.Duration,
		Type:     string(a.Type),
		Comment:  a.Comment,
	}
}

func toActResponses(acts []domain.Act) []ActResponse {
	res := make([]ActResponse, 0, len(acts))
	for _, a := range acts {
		res = append(res, toActResponse(a))
	}
	return res
}
