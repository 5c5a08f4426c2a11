package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// CreateDealUseCasePort — заключение сделки: связывает свободную потребность
// со свободным предложением и делает обе записи неизменяемыми.
type CreateDealUseCasePort interface {
	Execute(ctx context.Context, needID, offerID uuid.UUID) (*domain.Deal, error)
}

type GetDealUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.DealDetails, error)
}

type ListDealsUseCasePort interface {
	Execute(ctx context.Context, limit, offset int) ([]domain.DealDetails, error)
}

// GetDealCommissionsUseCasePort — расчет комиссий и отчислений по сделке.
type GetDealCommissionsUseCasePort interface {
	Execute(ctx context.Context, dealID uuid.UUID) (*domain.CommissionBreakdown, error)
}
