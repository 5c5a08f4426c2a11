package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePropertyStorage struct {
	properties []domain.Property
}

func (s *fakePropertyStorage) Create(context.Context, domain.Property) (bool, error) {
	return false, nil
}
func (s *fakePropertyStorage) Update(context.Context, domain.Property) error { return nil }
func (s *fakePropertyStorage) Delete(context.Context, uuid.UUID) error       { return nil }

func (s *fakePropertyStorage) GetByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	for _, p := range s.properties {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakePropertyStorage) List(context.Context, port.PropertyFilters, int, int) ([]domain.Property, error) {
	return s.properties, nil
}

func (s *fakePropertyStorage) ListAll(context.Context) ([]domain.Property, error) {
	return s.properties, nil
}

func (s *fakePropertyStorage) ListWithCoordinates(context.Context) ([]domain.Property, error) {
	withCoords := make([]domain.Property, 0)
	for _, p := range s.properties {
		if p.HasCoordinates() {
			withCoords = append(withCoords, p)
		}
	}
	return withCoords, nil
}

func landAt(lat, lon float64) domain.Property {
	return domain.Property{
		ID:        uuid.New(),
		Type:      domain.PropertyTypeLand,
		City:      "Минск",
		Latitude:  &lat,
		Longitude: &lon,
		Details:   domain.LandDetails{},
	}
}

func TestSearchPropertiesByPolygon(t *testing.T) {
	inside := landAt(53.90, 27.55)
	outside := landAt(52.10, 23.70)

	noCoords := domain.Property{
		ID:      uuid.New(),
		Type:    domain.PropertyTypeLand,
		City:    "Минск",
		Details: domain.LandDetails{},
	}

	storage := &fakePropertyStorage{properties: []domain.Property{inside, outside, noCoords}}
	uc := NewSearchPropertiesByPolygonUseCase(storage)

	// Прямоугольник вокруг Минска.
	found, err := uc.Execute(context.Background(), []string{
		"53.80,27.40", "54.00,27.40", "54.00,27.70", "53.80,27.70",
	})

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inside.ID, found[0].ID)
}

func TestSearchPropertiesByPolygonRejectsBadInput(t *testing.T) {
	storage := &fakePropertyStorage{}
	uc := NewSearchPropertiesByPolygonUseCase(storage)

	// Меньше трех вершин.
	_, err := uc.Execute(context.Background(), []string{"53.9,27.5", "54.0,27.6"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Некорректная пара координат.
	_, err = uc.Execute(context.Background(), []string{"53.9,27.5", "54.0,27.6", "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
