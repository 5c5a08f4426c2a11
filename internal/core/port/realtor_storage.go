package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// RealtorStoragePort — хранилище риэлторов.
type RealtorStoragePort interface {
	Create(ctx context.Context, realtor domain.Realtor) error
	Update(ctx context.Context, realtor domain.Realtor) error
	// Delete возвращает domain.ErrHasRelations, если за риэлтором
	// закреплены потребности или предложения.
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Realtor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Realtor, error)
	ListAll(ctx context.Context) ([]domain.Realtor, error)
}
