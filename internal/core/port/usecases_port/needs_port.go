package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateNeedUseCasePort interface {
	Execute(ctx context.Context, need domain.Need) (*domain.Need, error)
}

type UpdateNeedUseCasePort interface {
	Execute(ctx context.Context, need domain.Need) (*domain.Need, error)
}

type DeleteNeedUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetNeedUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.NeedDetails, error)
}

type ListNeedsUseCasePort interface {
	Execute(ctx context.Context, limit, offset int) ([]domain.NeedDetails, error)
}

// MatchingOffersForNeedUseCasePort — подбор предложений под потребность.
type MatchingOffersForNeedUseCasePort interface {
	Execute(ctx context.Context, needID uuid.UUID) ([]domain.OfferDetails, error)
}
