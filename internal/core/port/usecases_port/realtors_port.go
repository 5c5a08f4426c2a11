package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateRealtorUseCasePort interface {
	Execute(ctx context.Context, realtor domain.Realtor) (*domain.Realtor, error)
}

type UpdateRealtorUseCasePort interface {
	Execute(ctx context.Context, realtor domain.Realtor) (*domain.Realtor, error)
}

type DeleteRealtorUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetRealtorUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Realtor, error)
}

type ListRealtorsUseCasePort interface {
	Execute(ctx context.Context, limit, offset int) ([]domain.Realtor, error)
}

// SearchRealtorsUseCasePort — нечеткий поиск риэлторов по ФИО.
type SearchRealtorsUseCasePort interface {
	Execute(ctx context.Context, query string) ([]domain.Realtor, error)
}
