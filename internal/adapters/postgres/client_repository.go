package postgres

import (
	"context"
	"errors"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientRepository реализует port.ClientStoragePort для PostgreSQL.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository - конструктор.
func NewClientRepository(pool *pgxpool.Pool) (*ClientRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ClientRepository{pool: pool}, nil
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ClientRepository",
		"method":    "Create",
		"client_id": client.ID,
	})

	query := `INSERT INTO clients (id, last_name, first_name, patronymic, phone, email)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		client.ID, client.LastName, client.FirstName, client.Patronymic, client.Phone, client.Email)
	if err != nil {
		repoLogger.Error("Failed to insert client", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert client: %w", err)
	}

	repoLogger.Debug("Client inserted.", nil)
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client domain.Client) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ClientRepository",
		"method":    "Update",
		"client_id": client.ID,
	})

	query := `UPDATE clients
	          SET last_name = $2, first_name = $3, patronymic = $4, phone = $5, email = $6
	          WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query,
		client.ID, client.LastName, client.FirstName, client.Patronymic, client.Phone, client.Email)
	if err != nil {
		repoLogger.Error("Failed to update client", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Client updated.", nil)
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ClientRepository",
		"method":    "Delete",
		"client_id": id,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		// На клиента могут ссылаться потребности и предложения.
		if isForeignKeyViolation(err) {
			repoLogger.Warn("Client is referenced by needs or offers.", nil)
			return domain.ErrHasRelations
		}
		repoLogger.Error("Failed to delete client", err, nil)
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Client deleted.", nil)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ClientRepository",
		"method":    "GetByID",
		"client_id": id,
	})

	query := `SELECT id, last_name, first_name, patronymic, phone, email FROM clients WHERE id = $1`

	var client domain.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID, &client.LastName, &client.FirstName, &client.Patronymic, &client.Phone, &client.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query client", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query client: %w", err)
	}

	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	query := `SELECT id, last_name, first_name, patronymic, phone, email
	          FROM clients ORDER BY last_name, first_name, id LIMIT $1 OFFSET $2`
	return r.queryClients(ctx, query, limit, offset)
}

func (r *ClientRepository) ListAll(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, last_name, first_name, patronymic, phone, email
	          FROM clients ORDER BY last_name, first_name, id`
	return r.queryClients(ctx, query)
}

func (r *ClientRepository) queryClients(ctx context.Context, query string, args ...interface{}) ([]domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ClientRepository",
		"method":    "queryClients",
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query clients", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.LastName, &c.FirstName, &c.Patronymic, &c.Phone, &c.Email); err != nil {
			repoLogger.Error("Failed to scan client row", err, nil)
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during clients iteration", err, nil)
		return nil, fmt.Errorf("error during clients iteration: %w", err)
	}

	return clients, nil
}
