package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateClientUseCase инкапсулирует логику регистрации клиента.
type CreateClientUseCase struct {
	storage port.ClientStoragePort
}

// NewCreateClientUseCase создает новый экземпляр use case.
func NewCreateClientUseCase(storage port.ClientStoragePort) *CreateClientUseCase {
	return &CreateClientUseCase{storage: storage}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, client domain.Client) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateClient"})

	ucLogger.Info("Use case started", nil)

	if err := client.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}

	if err := uc.storage.Create(ctx, client); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"client_id": client.ID.String()})
	return &client, nil
}

// UpdateClientUseCase обновляет данные клиента.
type UpdateClientUseCase struct {
	storage port.ClientStoragePort
}

func NewUpdateClientUseCase(storage port.ClientStoragePort) *UpdateClientUseCase {
	return &UpdateClientUseCase{storage: storage}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, client domain.Client) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "UpdateClient",
		"client_id": client.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := client.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, client); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &client, nil
}

// DeleteClientUseCase удаляет клиента, если на него не ссылаются
// потребности и предложения.
type DeleteClientUseCase struct {
	storage port.ClientStoragePort
}

func NewDeleteClientUseCase(storage port.ClientStoragePort) *DeleteClientUseCase {
	return &DeleteClientUseCase{storage: storage}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "DeleteClient",
		"client_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

// GetClientUseCase возвращает клиента по идентификатору.
type GetClientUseCase struct {
	storage port.ClientStoragePort
}

func NewGetClientUseCase(storage port.ClientStoragePort) *GetClientUseCase {
	return &GetClientUseCase{storage: storage}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetClient",
		"client_id": id.String(),
	})

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	return result, nil
}

// ListClientsUseCase возвращает страницу клиентов.
type ListClientsUseCase struct {
	storage port.ClientStoragePort
}

func NewListClientsUseCase(storage port.ClientStoragePort) *ListClientsUseCase {
	return &ListClientsUseCase{storage: storage}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListClients",
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
