package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func apartment(area *float64, rooms, floor *int) Property {
	return Property{
		Type:    PropertyTypeApartment,
		Details: ApartmentDetails{Area: area, Rooms: rooms, Floor: floor},
	}
}

func TestNeedMatchesOfferPriceAndType(t *testing.T) {
	need := Need{PropertyType: PropertyTypeApartment, MinPrice: 100, MaxPrice: 200}
	prop := apartment(nil, nil, nil)

	assert.True(t, NeedMatchesOffer(need, Offer{Price: 150}, prop))
	assert.True(t, NeedMatchesOffer(need, Offer{Price: 100}, prop), "нижняя граница включительно")
	assert.True(t, NeedMatchesOffer(need, Offer{Price: 200}, prop), "верхняя граница включительно")
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 250}, prop))
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 99}, prop))

	house := Property{Type: PropertyTypeHouse, Details: HouseDetails{}}
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 150}, house), "категория не совпадает — цена не важна")
}

func TestNeedMatchesOfferAreaBounds(t *testing.T) {
	need := Need{
		PropertyType: PropertyTypeApartment,
		MinPrice:     1, MaxPrice: 1_000_000,
		MinArea: fptr(40), MaxArea: fptr(80),
	}

	assert.True(t, NeedMatchesOffer(need, Offer{Price: 100}, apartment(fptr(60), nil, nil)))
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 100}, apartment(fptr(30), nil, nil)))
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 100}, apartment(fptr(90), nil, nil)))

	// У объекта не указана площадь — ограничение снимается, а не отклоняет.
	assert.True(t, NeedMatchesOffer(need, Offer{Price: 100}, apartment(nil, nil, nil)))

	// Граница не задана — любое значение проходит.
	open := Need{PropertyType: PropertyTypeApartment, MinPrice: 1, MaxPrice: 1_000_000}
	assert.True(t, NeedMatchesOffer(open, Offer{Price: 100}, apartment(fptr(300), nil, nil)))
}

func TestNeedMatchesOfferRoomsAndFloor(t *testing.T) {
	need := Need{
		PropertyType: PropertyTypeApartment,
		MinPrice:     1, MaxPrice: 1_000_000,
		MinRooms: iptr(2), MaxRooms: iptr(3),
		MinFloor: iptr(2), MaxFloor: iptr(9),
	}

	assert.True(t, NeedMatchesOffer(need, Offer{Price: 10}, apartment(nil, iptr(3), iptr(5))))
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 10}, apartment(nil, iptr(1), iptr(5))))
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 10}, apartment(nil, iptr(3), iptr(1))))
	assert.True(t, NeedMatchesOffer(need, Offer{Price: 10}, apartment(nil, nil, nil)))
}

func TestNeedMatchesOfferHouseFloors(t *testing.T) {
	need := Need{
		PropertyType: PropertyTypeHouse,
		MinPrice:     1, MaxPrice: 1_000_000,
		MinFloors: iptr(2), MaxFloors: iptr(2),
	}

	twoFloors := Property{Type: PropertyTypeHouse, Details: HouseDetails{Floors: iptr(2)}}
	threeFloors := Property{Type: PropertyTypeHouse, Details: HouseDetails{Floors: iptr(3)}}

	assert.True(t, NeedMatchesOffer(need, Offer{Price: 10}, twoFloors))
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 10}, threeFloors))
}

func TestNeedMatchesOfferLandArea(t *testing.T) {
	need := Need{
		PropertyType: PropertyTypeLand,
		MinPrice:     1, MaxPrice: 1_000_000,
		MinLandArea: fptr(500),
		// Границы общей площади к участкам не применяются.
		MinArea: fptr(10_000),
	}

	land := Property{Type: PropertyTypeLand, Details: LandDetails{Area: fptr(600)}}
	assert.True(t, NeedMatchesOffer(need, Offer{Price: 10}, land))

	small := Property{Type: PropertyTypeLand, Details: LandDetails{Area: fptr(400)}}
	assert.False(t, NeedMatchesOffer(need, Offer{Price: 10}, small))
}

func TestNeedValidate(t *testing.T) {
	valid := Need{PropertyType: PropertyTypeApartment, MinPrice: 100, MaxPrice: 200}
	assert.NoError(t, valid.Validate())

	inverted := Need{PropertyType: PropertyTypeApartment, MinPrice: 300, MaxPrice: 200}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidInput)

	badArea := Need{PropertyType: PropertyTypeApartment, MinPrice: 1, MaxPrice: 2, MinArea: fptr(80), MaxArea: fptr(40)}
	assert.ErrorIs(t, badArea.Validate(), ErrInvalidInput)

	badType := Need{PropertyType: "castle", MinPrice: 1, MaxPrice: 2}
	assert.ErrorIs(t, badType.Validate(), ErrInvalidInput)

	free := Need{PropertyType: PropertyTypeLand, MinPrice: 0, MaxPrice: 10}
	assert.ErrorIs(t, free.Validate(), ErrInvalidInput)
}
