package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// NeedStoragePort — хранилище потребностей.
type NeedStoragePort interface {
	Create(ctx context.Context, need domain.Need) error
	// Update возвращает domain.ErrAlreadyBound для связанной потребности.
	Update(ctx context.Context, need domain.Need) error
	// Delete возвращает domain.ErrAlreadyBound для связанной потребности.
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.NeedDetails, error)
	List(ctx context.Context, limit, offset int) ([]domain.NeedDetails, error)
	// ListAll отдает всю коллекцию для подбора по предложению.
	ListAll(ctx context.Context) ([]domain.NeedDetails, error)
}
