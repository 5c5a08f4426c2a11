package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreatePropertyUseCase сохраняет объект недвижимости и сообщает,
// похож ли он на уже существующий (совпадение отпечатка).
type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property domain.Property) (*domain.Property, bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "CreateProperty",
		"property_type": string(property.Type),
	})

	ucLogger.Info("Use case started", nil)

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, false, err
	}
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}

	duplicate, err := uc.storage.Create(ctx, property)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, false, fmt.Errorf("failed to create property: %w", err)
	}
	if duplicate {
		ucLogger.Warn("Probable duplicate property detected", port.Fields{"property_id": property.ID.String()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID.String()})
	return &property, duplicate, nil
}

// UpdatePropertyUseCase обновляет объект недвижимости.
type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, property domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": property.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &property, nil
}

// DeletePropertyUseCase удаляет объект, не фигурирующий в предложениях.
type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// GetPropertyUseCase возвращает объект по идентификатору.
type GetPropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyUseCase(storage port.PropertyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListPropertiesUseCase возвращает страницу объектов с учетом фильтров.
type ListPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewListPropertiesUseCase(storage port.PropertyStoragePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{storage: storage}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters port.PropertyFilters, limit, offset int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListProperties",
		"limit":    limit,
		"offset":   offset,
	})

	result, err := uc.storage.List(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}
