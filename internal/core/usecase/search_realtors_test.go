package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRealtorStorage struct {
	realtors []domain.Realtor
}

func (s *fakeRealtorStorage) Create(context.Context, domain.Realtor) error { return nil }
func (s *fakeRealtorStorage) Update(context.Context, domain.Realtor) error { return nil }
func (s *fakeRealtorStorage) Delete(context.Context, uuid.UUID) error      { return nil }

func (s *fakeRealtorStorage) GetByID(_ context.Context, id uuid.UUID) (*domain.Realtor, error) {
	for _, r := range s.realtors {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeRealtorStorage) List(context.Context, int, int) ([]domain.Realtor, error) {
	return s.realtors, nil
}

func (s *fakeRealtorStorage) ListAll(context.Context) ([]domain.Realtor, error) {
	return s.realtors, nil
}

func TestSearchRealtorsToleratesTypos(t *testing.T) {
	storage := &fakeRealtorStorage{realtors: []domain.Realtor{
		{ID: uuid.New(), LastName: "Петров", FirstName: "Петр", Patronymic: "Петрович"},
		{ID: uuid.New(), LastName: "Смирнова", FirstName: "Ольга", Patronymic: "Ивановна"},
	}}
	uc := NewSearchRealtorsUseCase(storage)

	found, err := uc.Execute(context.Background(), "Питров")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Петров", found[0].LastName)
}

func TestSearchRealtorsEmptyQuery(t *testing.T) {
	storage := &fakeRealtorStorage{realtors: []domain.Realtor{
		{ID: uuid.New(), LastName: "Петров", FirstName: "Петр", Patronymic: "Петрович"},
	}}
	uc := NewSearchRealtorsUseCase(storage)

	// Пустой и пробельный запрос — ошибка валидации, а не пустая выдача.
	for _, query := range []string{"", "   "} {
		found, err := uc.Execute(context.Background(), query)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, found)
	}
}
