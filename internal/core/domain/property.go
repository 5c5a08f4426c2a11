package domain

import (
	"strings"

	"github.com/google/uuid"
)

// PropertyType — категория объекта недвижимости.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeLand      PropertyType = "land"
)

// Valid сообщает, известна ли категория.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeLand:
		return true
	}
	return false
}

// Property — объект недвижимости. Категория хранится тегом Type,
// а специфичные атрибуты — вариантом Details (ровно один на объект).
// Координаты опциональны; порядок всегда (широта, долгота).
type Property struct {
	ID              uuid.UUID
	Type            PropertyType
	City            string
	Street          string
	HouseNumber     string
	ApartmentNumber string
	Latitude        *float64
	Longitude       *float64
	Details         PropertyDetails
}

// PropertyDetails — вариантная часть объекта, зависящая от категории.
type PropertyDetails interface {
	isPropertyDetails()
}

// ApartmentDetails — атрибуты квартиры.
type ApartmentDetails struct {
	Floor *int
	Rooms *int
	Area  *float64
}

// HouseDetails — атрибуты дома.
type HouseDetails struct {
	Floors *int
	Rooms  *int
	Area   *float64
}

// LandDetails — атрибуты земельного участка.
type LandDetails struct {
	Area *float64
}

func (ApartmentDetails) isPropertyDetails() {}
func (HouseDetails) isPropertyDetails()     {}
func (LandDetails) isPropertyDetails()      {}

// Validate проверяет тег категории, согласованность варианта и координаты.
func (p Property) Validate() error {
	if !p.Type.Valid() {
		return InvalidInput("unknown property type %q", p.Type)
	}
	switch p.Details.(type) {
	case ApartmentDetails:
		if p.Type != PropertyTypeApartment {
			return InvalidInput("apartment details on %s property", p.Type)
		}
	case HouseDetails:
		if p.Type != PropertyTypeHouse {
			return InvalidInput("house details on %s property", p.Type)
		}
	case LandDetails:
		if p.Type != PropertyTypeLand {
			return InvalidInput("land details on %s property", p.Type)
		}
	case nil:
		return InvalidInput("property details are required")
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return InvalidInput("latitude must be between -90 and 90")
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return InvalidInput("longitude must be between -180 and 180")
	}
	return nil
}

// Address собирает адрес из непустых компонентов.
func (p Property) Address() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.City, p.Street, p.HouseNumber, p.ApartmentNumber} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// HasCoordinates сообщает, заданы ли обе координаты.
// Объекты без координат исключаются из поиска по полигону.
func (p Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Area возвращает площадь объекта независимо от категории.
func (p Property) Area() *float64 {
	switch d := p.Details.(type) {
	case ApartmentDetails:
		return d.Area
	case HouseDetails:
		return d.Area
	case LandDetails:
		return d.Area
	}
	return nil
}

// Rooms возвращает число комнат (квартиры и дома).
func (p Property) Rooms() *int {
	switch d := p.Details.(type) {
	case ApartmentDetails:
		return d.Rooms
	case HouseDetails:
		return d.Rooms
	}
	return nil
}

// Floor возвращает этаж квартиры.
func (p Property) Floor() *int {
	if d, ok := p.Details.(ApartmentDetails); ok {
		return d.Floor
	}
	return nil
}

// Floors возвращает этажность дома.
func (p Property) Floors() *int {
	if d, ok := p.Details.(HouseDetails); ok {
		return d.Floors
	}
	return nil
}
