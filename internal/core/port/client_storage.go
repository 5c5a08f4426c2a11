package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// ClientStoragePort — хранилище клиентов.
type ClientStoragePort interface {
	Create(ctx context.Context, client domain.Client) error
	Update(ctx context.Context, client domain.Client) error
	// Delete возвращает domain.ErrHasRelations, если на клиента
	// ссылаются потребности или предложения.
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]domain.Client, error)
	// ListAll отдает всю коллекцию для нечеткого поиска в памяти.
	ListAll(ctx context.Context) ([]domain.Client, error)
}
