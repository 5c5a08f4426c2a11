package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateActUseCasePort interface {
	Execute(ctx context.Context, act domain.Act) (*domain.Act, error)
}

type UpdateActUseCasePort interface {
	Execute(ctx context.Context, act domain.Act) (*domain.Act, error)
}

type DeleteActUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetActUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Act, error)
}

type ListActsUseCasePort interface {
	Execute(ctx context.Context, limit, offset int) ([]domain.Act, error)
}
