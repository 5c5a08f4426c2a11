package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyFilters — фильтры списка объектов недвижимости.
type PropertyFilters struct {
	City         string
	Street       string
	PropertyType domain.PropertyType
}

// PropertyStoragePort — хранилище объектов недвижимости.
type PropertyStoragePort interface {
	// Create сохраняет объект и возвращает признак того, что в базе
	// уже есть объект с таким же отпечатком (вероятный дубль).
	Create(ctx context.Context, property domain.Property) (duplicate bool, err error)
	Update(ctx context.Context, property domain.Property) error
	// Delete возвращает domain.ErrHasRelations, если объект
	// фигурирует в предложении.
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, filters PropertyFilters, limit, offset int) ([]domain.Property, error)
	// ListAll отдает всю коллекцию для нечеткого поиска по адресу.
	ListAll(ctx context.Context) ([]domain.Property, error)
	// ListWithCoordinates отдает только объекты с заданными координатами
	// для поиска по полигону.
	ListWithCoordinates(ctx context.Context) ([]domain.Property, error)
}
