package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateNeedUseCase регистрирует потребность в покупке объекта.
type CreateNeedUseCase struct {
	storage port.NeedStoragePort
}

func NewCreateNeedUseCase(storage port.NeedStoragePort) *CreateNeedUseCase {
	return &CreateNeedUseCase{storage: storage}
}

func (uc *CreateNeedUseCase) Execute(ctx context.Context, need domain.Need) (*domain.Need, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateNeed"})

	ucLogger.Info("Use case started", nil)

	if err := need.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if need.ID == uuid.Nil {
		need.ID = uuid.New()
	}
	need.Status = domain.ListingStatusOpen

	if err := uc.storage.Create(ctx, need); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to create need: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"need_id": need.ID.String()})
	return &need, nil
}

// UpdateNeedUseCase обновляет свободную потребность.
// Связанная сделкой потребность неизменяема.
type UpdateNeedUseCase struct {
	storage port.NeedStoragePort
}

func NewUpdateNeedUseCase(storage port.NeedStoragePort) *UpdateNeedUseCase {
	return &UpdateNeedUseCase{storage: storage}
}

func (uc *UpdateNeedUseCase) Execute(ctx context.Context, need domain.Need) (*domain.Need, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateNeed",
		"need_id":  need.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := need.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, need); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &need, nil
}

// DeleteNeedUseCase удаляет свободную потребность.
type DeleteNeedUseCase struct {
	storage port.NeedStoragePort
}

func NewDeleteNeedUseCase(storage port.NeedStoragePort) *DeleteNeedUseCase {
	return &DeleteNeedUseCase{storage: storage}
}

func (uc *DeleteNeedUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteNeed",
		"need_id":  id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// GetNeedUseCase возвращает потребность вместе с участниками.
type GetNeedUseCase struct {
	storage port.NeedStoragePort
}

func NewGetNeedUseCase(storage port.NeedStoragePort) *GetNeedUseCase {
	return &GetNeedUseCase{storage: storage}
}

func (uc *GetNeedUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.NeedDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetNeed",
		"need_id":  id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListNeedsUseCase возвращает страницу потребностей.
type ListNeedsUseCase struct {
	storage port.NeedStoragePort
}

func NewListNeedsUseCase(storage port.NeedStoragePort) *ListNeedsUseCase {
	return &ListNeedsUseCase{storage: storage}
}

func (uc *ListNeedsUseCase) Execute(ctx context.Context, limit, offset int) ([]domain.NeedDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListNeeds",
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
