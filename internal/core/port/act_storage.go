package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// ActStoragePort — хранилище действий риэлторов.
type ActStoragePort interface {
	Create(ctx context.Context, act domain.Act) error
	Update(ctx context.Context, act domain.Act) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Act, error)
	List(ctx context.Context, limit, offset int) ([]domain.Act, error)
}
