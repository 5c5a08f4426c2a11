package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateOfferUseCase регистрирует предложение о продаже объекта.
type CreateOfferUseCase struct {
	storage port.OfferStoragePort
}

func NewCreateOfferUseCase(storage port.OfferStoragePort) *CreateOfferUseCase {
	return &CreateOfferUseCase{storage: storage}
}

func (uc *CreateOfferUseCase) Execute(ctx context.Context, offer domain.Offer) (*domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateOffer"})

	ucLogger.Info("Use case started", nil)

	if err := offer.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	offer.Status = domain.ListingStatusOpen

	if err := uc.storage.Create(ctx, offer); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"offer_id": offer.ID.String()})
	return &offer, nil
}

// UpdateOfferUseCase обновляет свободное предложение.
// Связанное сделкой предложение неизменяемо.
type UpdateOfferUseCase struct {
	storage port.OfferStoragePort
}

func NewUpdateOfferUseCase(storage port.OfferStoragePort) *UpdateOfferUseCase {
	return &UpdateOfferUseCase{storage: storage}
}

func (uc *UpdateOfferUseCase) Execute(ctx context.Context, offer domain.Offer) (*domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateOffer",
		"offer_id": offer.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := offer.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, offer); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &offer, nil
}

// DeleteOfferUseCase удаляет свободное предложение.
type DeleteOfferUseCase struct {
	storage port.OfferStoragePort
}

func NewDeleteOfferUseCase(storage port.OfferStoragePort) *DeleteOfferUseCase {
	return &DeleteOfferUseCase{storage: storage}
}

func (uc *DeleteOfferUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteOffer",
		"offer_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// GetOfferUseCase возвращает предложение вместе с участниками и объектом.
type GetOfferUseCase struct {
	storage port.OfferStoragePort
}

func NewGetOfferUseCase(storage port.OfferStoragePort) *GetOfferUseCase {
	return &GetOfferUseCase{storage: storage}
}

func (uc *GetOfferUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.OfferDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetOffer",
		"offer_id": id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListOffersUseCase возвращает страницу предложений.
type ListOffersUseCase struct {
	storage port.OfferStoragePort
}

func NewListOffersUseCase(storage port.OfferStoragePort) *ListOffersUseCase {
	return &ListOffersUseCase{storage: storage}
}

func (uc *ListOffersUseCase) Execute(ctx context.Context, limit, offset int) ([]domain.OfferDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListOffers",
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
