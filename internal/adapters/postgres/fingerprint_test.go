package postgres

import (
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func fingerprintProperty(city string, area float64) domain.Property {
	lat, lon := 53.9006, 27.5590
	return domain.Property{
		Type:        domain.PropertyTypeApartment,
		City:        city,
		Street:      "Ленина",
		HouseNumber: "12",
		Latitude:    &lat,
		Longitude:   &lon,
		Details:     domain.ApartmentDetails{Area: &area},
	}
}

func TestPropertyFingerprintStable(t *testing.T) {
	// Регистр и пробелы в адресе не меняют отпечаток.
	a := fingerprintProperty("Минск", 52.0)
	b := fingerprintProperty("  МИНСК ", 52.0)

	assert.Equal(t, propertyFingerprint(a), propertyFingerprint(b))
}

func TestPropertyFingerprintAreaBuckets(t *testing.T) {
	// Площади в одной пятиметровой корзине дают один отпечаток.
	a := fingerprintProperty("Минск", 51.0)
	b := fingerprintProperty("Минск", 54.0)
	c := fingerprintProperty("Минск", 57.0)

	assert.Equal(t, propertyFingerprint(a), propertyFingerprint(b))
	assert.NotEqual(t, propertyFingerprint(a), propertyFingerprint(c))
}

func TestPropertyFingerprintDistinguishesType(t *testing.T) {
	apartment := fingerprintProperty("Минск", 52.0)

	house := apartment
	house.Type = domain.PropertyTypeHouse
	area := 52.0
	house.Details = domain.HouseDetails{Area: &area}

	assert.NotEqual(t, propertyFingerprint(apartment), propertyFingerprint(house))
}

func TestPropertyFingerprintWithoutCoordinates(t *testing.T) {
	withCoords := fingerprintProperty("Минск", 52.0)

	noCoords := withCoords
	noCoords.Latitude = nil
	noCoords.Longitude = nil

	assert.NotEqual(t, propertyFingerprint(withCoords), propertyFingerprint(noCoords))
}
