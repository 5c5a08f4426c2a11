package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateDealUseCase заключает сделку между потребностью и предложением.
// Связывание атомарно выполняется в хранилище: каждая сторона может
// участвовать не более чем в одной сделке.
type CreateDealUseCase struct {
	storage port.DealStoragePort
	events  port.DealEventsPort
}

func NewCreateDealUseCase(storage port.DealStoragePort, events port.DealEventsPort) *CreateDealUseCase {
	return &CreateDealUseCase{storage: storage, events: events}
}

func (uc *CreateDealUseCase) Execute(ctx context.Context, needID, offerID uuid.UUID) (*domain.Deal, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateDeal",
		"need_id":  needID.String(),
		"offer_id": offerID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if needID == uuid.Nil || offerID == uuid.Nil {
		return nil, domain.InvalidInput("deal requires both a need id and an offer id")
	}

	deal, err := uc.storage.Create(ctx, needID, offerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	ucLogger.Info("Deal created", port.Fields{"deal_id": deal.ID.String()})

	if uc.events != nil {
		if err := uc.events.PublishDealCreated(ctx, *deal); err != nil {
			// Логируем ошибку, но не возвращаем ее: сделка уже заключена,
			// откатывать связывание из-за брокера нельзя.
			ucLogger.Error("Failed to publish deal created event", err, nil)
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return deal, nil
}
