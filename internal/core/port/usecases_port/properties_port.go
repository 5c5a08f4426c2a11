package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreatePropertyUseCasePort interface {
	// Execute возвращает также признак вероятного дубля по отпечатку объекта.
	Execute(ctx context.Context, property domain.Property) (created *domain.Property, duplicate bool, err error)
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, property domain.Property) (*domain.Property, error)
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetPropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

type ListPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters port.PropertyFilters, limit, offset int) ([]domain.Property, error)
}

// SearchPropertiesByAddressUseCasePort — нечеткий поиск по компонентам адреса.
type SearchPropertiesByAddressUseCasePort interface {
	Execute(ctx context.Context, query string) ([]domain.Property, error)
}

// SearchPropertiesByPolygonUseCasePort — поиск объектов внутри района.
// Координаты передаются токенами "lat,lon", минимум три.
type SearchPropertiesByPolygonUseCasePort interface {
	Execute(ctx context.Context, coords []string) ([]domain.Property, error)
}
