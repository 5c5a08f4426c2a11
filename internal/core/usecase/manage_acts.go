package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateActUseCase регистрирует действие риэлтора (встреча, показ, звонок).
type CreateActUseCase struct {
	storage port.ActStoragePort
}

func NewCreateActUseCase(storage port.ActStoragePort) *CreateActUseCase {
	return &CreateActUseCase{storage: storage}
}

func (uc *CreateActUseCase) Execute(ctx context.Context, act domain.Act) (*domain.Act, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateAct"})

	ucLogger.Info("Use case started", nil)

	if err := act.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if act.ID == uuid.Nil {
		act.ID = uuid.New()
	}

	if err := uc.storage.Create(ctx, act); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to create act: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"act_id": act.ID.String()})
	return &act, nil
}

// UpdateActUseCase обновляет действие.
type UpdateActUseCase struct {
	storage port.ActStoragePort
}

func NewUpdateActUseCase(storage port.ActStoragePort) *UpdateActUseCase {
	return &UpdateActUseCase{storage: storage}
}

func (uc *UpdateActUseCase) Execute(ctx context.Context, act domain.Act) (*domain.Act, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateAct",
		"act_id":   act.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := act.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, act); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &act, nil
}

// DeleteActUseCase удаляет действие.
type DeleteActUseCase struct {
	storage port.ActStoragePort
}

func NewDeleteActUseCase(storage port.ActStoragePort) *DeleteActUseCase {
	return &DeleteActUseCase{storage: storage}
}

func (uc *DeleteActUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteAct",
		"act_id":   id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// GetActUseCase возвращает действие по идентификатору.
type GetActUseCase struct {
	storage port.ActStoragePort
}

func NewGetActUseCase(storage port.ActStoragePort) *GetActUseCase {
	return &GetActUseCase{storage: storage}
}

func (uc *GetActUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Act, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetAct",
		"act_id":   id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListActsUseCase возвращает страницу действий.
type ListActsUseCase struct {
	storage port.ActStoragePort
}

func NewListActsUseCase(storage port.ActStoragePort) *ListActsUseCase {
	return &ListActsUseCase{storage: storage}
}

func (uc *ListActsUseCase) Execute(ctx context.Context, limit, offset int) ([]domain.Act, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListActs",
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
