package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// GetDealUseCase возвращает сделку со сторонами и объектом.
type GetDealUseCase struct {
	storage port.DealStoragePort
}

func NewGetDealUseCase(storage port.DealStoragePort) *GetDealUseCase {
	return &GetDealUseCase{storage: storage}
}

func (uc *GetDealUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.DealDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDeal",
		"deal_id":  id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListDealsUseCase возвращает страницу сделок.
type ListDealsUseCase struct {
	storage port.DealStoragePort
}

func NewListDealsUseCase(storage port.DealStoragePort) *ListDealsUseCase {
	return &ListDealsUseCase{storage: storage}
}

func (uc *ListDealsUseCase) Execute(ctx context.Context, limit, offset int) ([]domain.DealDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListDeals",
		"limit":    limit,
		"offset":   offset,
	})

	result, err := uc.storage.List(ctx, limit, offset)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}
