package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// DealStoragePort — хранилище сделок.
type DealStoragePort interface {
	// Create атомарно проверяет, что потребность и предложение свободны,
	// создает сделку и переводит обе записи в состояние bound.
	// Возвращает domain.ErrAlreadyBound, если любая из сторон уже связана,
	// и domain.ErrNotFound, если сторона не существует. Два конкурентных
	// вызова с одной и той же стороной не могут завершиться успешно оба.
	Create(ctx context.Context, needID, offerID uuid.UUID) (*domain.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DealDetails, error)
	List(ctx context.Context, limit, offset int) ([]domain.DealDetails, error)
}
