package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateRealtorUseCase инкапсулирует логику регистрации риэлтора.
type CreateRealtorUseCase struct {
	storage port.RealtorStoragePort
}

func NewCreateRealtorUseCase(storage port.RealtorStoragePort) *CreateRealtorUseCase {
	return &CreateRealtorUseCase{storage: storage}
}

func (uc *CreateRealtorUseCase) Execute(ctx context.Context, realtor domain.Realtor) (*domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateRealtor"})

	ucLogger.Info("Use case started", nil)

	if err := realtor.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if realtor.ID == uuid.Nil {
		realtor.ID = uuid.New()
	}

	if err := uc.storage.Create(ctx, realtor); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to create realtor: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"realtor_id": realtor.ID.String()})
	return &realtor, nil
}

// UpdateRealtorUseCase обновляет данные риэлтора.
type UpdateRealtorUseCase struct {
	storage port.RealtorStoragePort
}

func NewUpdateRealtorUseCase(storage port.RealtorStoragePort) *UpdateRealtorUseCase {
	return &UpdateRealtorUseCase{storage: storage}
}

func (uc *UpdateRealtorUseCase) Execute(ctx context.Context, realtor domain.Realtor) (*domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateRealtor",
		"realtor_id": realtor.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := realtor.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, realtor); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &realtor, nil
}

// DeleteRealtorUseCase удаляет риэлтора, если за ним не числятся
// потребности и предложения.
type DeleteRealtorUseCase struct {
	storage port.RealtorStoragePort
}

func NewDeleteRealtorUseCase(storage port.RealtorStoragePort) *DeleteRealtorUseCase {
	return &DeleteRealtorUseCase{storage: storage}
}

func (uc *DeleteRealtorUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteRealtor",
		"realtor_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// GetRealtorUseCase возвращает риэлтора по идентификатору.
type GetRealtorUseCase struct {
	storage port.RealtorStoragePort
}

func NewGetRealtorUseCase(storage port.RealtorStoragePort) *GetRealtorUseCase {
	return &GetRealtorUseCase{storage: storage}
}

func (uc *GetRealtorUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetRealtor",
		"realtor_id": id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListRealtorsUseCase возвращает страницу риэлторов.
type ListRealtorsUseCase struct {
	storage port.RealtorStoragePort
}

func NewListRealtorsUseCase(storage port.RealtorStoragePort) *ListRealtorsUseCase {
	return &ListRealtorsUseCase{storage: storage}
}

func (uc *ListRealtorsUseCase) Execute(ctx context.Context, limit, offset int) ([]domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListRealtors",
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
