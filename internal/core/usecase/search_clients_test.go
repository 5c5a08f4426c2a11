package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientStorage struct {
	clients []domain.Client
}

func (s *fakeClientStorage) Create(context.Context, domain.Client) error { return nil }
func (s *fakeClientStorage) Update(context.Context, domain.Client) error { return nil }
func (s *fakeClientStorage) Delete(context.Context, uuid.UUID) error     { return nil }

func (s *fakeClientStorage) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	for _, c := range s.clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeClientStorage) List(context.Context, int, int) ([]domain.Client, error) {
	return s.clients, nil
}

func (s *fakeClientStorage) ListAll(context.Context) ([]domain.Client, error) {
	return s.clients, nil
}

func TestSearchClientsToleratesTypos(t *testing.T) {
	storage := &fakeClientStorage{clients: []domain.Client{
		{ID: uuid.New(), LastName: "Иванов", FirstName: "Иван", Patronymic: "Иванович", Phone: "+375291111111"},
		{ID: uuid.New(), LastName: "Сидорова", FirstName: "Мария", Patronymic: "Петровна", Phone: "+375292222222"},
	}}
	uc := NewSearchClientsUseCase(storage)

	// Опечатка в фамилии — в пределах порога.
	found, err := uc.Execute(context.Background(), "Ивонов")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Иванов", found[0].LastName)

	// Совпадение по любой части ФИО.
	found, err = uc.Execute(context.Background(), "Мария")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Сидорова", found[0].LastName)
}

func TestSearchClientsNoMatch(t *testing.T) {
	storage := &fakeClientStorage{clients: []domain.Client{
		{ID: uuid.New(), LastName: "Иванов", FirstName: "Иван", Patronymic: "Иванович", Phone: "+375291111111"},
	}}
	uc := NewSearchClientsUseCase(storage)

	found, err := uc.Execute(context.Background(), "Кузнечиков")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearchClientsEmptyQuery(t *testing.T) {
	storage := &fakeClientStorage{clients: []domain.Client{
		{ID: uuid.New(), LastName: "Иванов", FirstName: "Иван", Patronymic: "Иванович", Phone: "+375291111111"},
	}}
	uc := NewSearchClientsUseCase(storage)

	// Пустой и пробельный запрос — ошибка валидации, а не пустая выдача.
	for _, query := range []string{"", "   "} {
		found, err := uc.Execute(context.Background(), query)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, found)
	}
}
