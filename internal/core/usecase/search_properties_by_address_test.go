package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressedProperty(city, street, house, apartment string) domain.Property {
	return domain.Property{
		ID:              uuid.New(),
		Type:            domain.PropertyTypeApartment,
		City:            city,
		Street:          street,
		HouseNumber:     house,
		ApartmentNumber: apartment,
		Details:         domain.ApartmentDetails{},
	}
}

func TestSearchPropertiesByAddress(t *testing.T) {
	minsk := addressedProperty("Минск", "Ленина", "12", "5")
	gomel := addressedProperty("Гомель", "Советская", "7", "")

	storage := &fakePropertyStorage{properties: []domain.Property{minsk, gomel}}
	uc := NewSearchPropertiesByAddressUseCase(storage)

	// Опечатка в названии города.
	found, err := uc.Execute(context.Background(), "Минскк")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, minsk.ID, found[0].ID)

	// Совпадение по улице.
	found, err = uc.Execute(context.Background(), "Советская")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, gomel.ID, found[0].ID)
}

func TestSearchPropertiesByAddressStrictNumbers(t *testing.T) {
	house12 := addressedProperty("Минск", "Ленина", "12", "")

	storage := &fakePropertyStorage{properties: []domain.Property{house12}}
	uc := NewSearchPropertiesByAddressUseCase(storage)

	// Для номера дома допустима ровно одна правка.
	found, err := uc.Execute(context.Background(), "129")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = uc.Execute(context.Background(), "1299")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearchPropertiesByAddressEmptyQuery(t *testing.T) {
	storage := &fakePropertyStorage{properties: []domain.Property{
		addressedProperty("Минск", "Ленина", "12", ""),
	}}
	uc := NewSearchPropertiesByAddressUseCase(storage)

	// Пустой запрос отклоняется до обращения к хранилищу.
	found, err := uc.Execute(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, found)
}
