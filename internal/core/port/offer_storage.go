package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// OfferStoragePort — хранилище предложений.
type OfferStoragePort interface {
	Create(ctx context.Context, offer domain.Offer) error
	// Update возвращает domain.ErrAlreadyBound для связанного предложения.
	Update(ctx context.Context, offer domain.Offer) error
	// Delete возвращает domain.ErrAlreadyBound для связанного предложения.
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferDetails, error)
	List(ctx context.Context, limit, offset int) ([]domain.OfferDetails, error)
	// ListAll отдает всю коллекцию для подбора по потребности.
	ListAll(ctx context.Context) ([]domain.OfferDetails, error)
}
