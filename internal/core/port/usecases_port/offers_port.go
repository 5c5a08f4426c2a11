package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateOfferUseCasePort interface {
	Execute(ctx context.Context, offer domain.Offer) (*domain.Offer, error)
}

type UpdateOfferUseCasePort interface {
	Execute(ctx context.Context, offer domain.Offer) (*domain.Offer, error)
}

type DeleteOfferUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetOfferUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.OfferDetails, error)
}

type ListOffersUseCasePort interface {
	Execute(ctx context.Context, limit, offset int) ([]domain.OfferDetails, error)
}

// MatchingNeedsForOfferUseCasePort — подбор потребностей,
// которые может удовлетворить предложение.
type MatchingNeedsForOfferUseCasePort interface {
	Execute(ctx context.Context, offerID uuid.UUID) ([]domain.NeedDetails, error)
}
