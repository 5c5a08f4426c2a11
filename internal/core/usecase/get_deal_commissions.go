package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// GetDealCommissionsUseCase рассчитывает комиссии и отчисления по сделке.
// Расчет детерминирован: повторный вызов для той же сделки дает тот же
// результат.
type GetDealCommissionsUseCase struct {
	storage port.DealStoragePort
}

func NewGetDealCommissionsUseCase(storage port.DealStoragePort) *GetDealCommissionsUseCase {
	return &GetDealCommissionsUseCase{storage: storage}
}

func (uc *GetDealCommissionsUseCase) Execute(ctx context.Context, dealID uuid.UUID) (*domain.CommissionBreakdown, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDealCommissions",
		"deal_id":  dealID.String(),
	})

	ucLogger.Info("Use case started", nil)

	deal, err := uc.storage.GetByID(ctx, dealID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	breakdown := domain.CalculateCommissions(*deal)

	ucLogger.Info("Use case finished successfully", nil)
	return &breakdown, nil
}
