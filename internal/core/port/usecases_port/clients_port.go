package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateClientUseCasePort interface {
	Execute(ctx context.Context, client domain.Client) (*domain.Client, error)
}

type UpdateClientUseCasePort interface {
	Execute(ctx context.Context, client domain.Client) (*domain.Client, error)
}

type DeleteClientUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetClientUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type ListClientsUseCasePort interface {
	Execute(ctx context.Context, limit, offset int) ([]domain.Client, error)
}

// SearchClientsUseCasePort — нечеткий поиск клиентов по ФИО.
type SearchClientsUseCasePort interface {
	Execute(ctx context.Context, query string) ([]domain.Client, error)
}
