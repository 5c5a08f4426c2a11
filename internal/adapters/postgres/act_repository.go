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

// ActRepository реализует port.ActStoragePort для PostgreSQL.
type ActRepository struct {
	pool *pgxpool.Pool
}

// NewActRepository - конструктор.
func NewActRepository(pool *pgxpool.Pool) (*ActRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ActRepository{pool: pool}, nil
}

func (r *ActRepository) Create(ctx context.Context, act domain.Act) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ActRepository",
		"method":    "Create",
		"act_id":    act.ID,
	})

	query := `INSERT INTO acts (id, date_time, duration, type, comment)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, act.ID, act.DateTime, act.Duration, act.Type, act.Comment)
	if err != nil {
		repoLogger.Error("Failed to insert act", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert act: %w", err)
	}

	repoLogger.Debug("Act inserted.", nil)
	return nil
}

func (r *ActRepository) Update(ctx context.Context, act domain.Act) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ActRepository",
		"method":    "Update",
		"act_id":    act.ID,
	})

	query := `UPDATE acts SET date_time = $2, duration = $3, type = $4, comment = $5 WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, act.ID, act.DateTime, act.Duration, act.Type, act.Comment)
	if err != nil {
		repoLogger.Error("Failed to update act", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update act: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Act updated.", nil)
	return nil
}

func (r *ActRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ActRepository",
		"method":    "Delete",
		"act_id":    id,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM acts WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete act", err, nil)
		return fmt.Errorf("failed to delete act: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Act deleted.", nil)
	return nil
}

func (r *ActRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Act, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ActRepository",
		"method":    "GetByID",
		"act_id":    id,
	})

	var act domain.Act
	err := r.pool.QueryRow(ctx,
		`SELECT id, date_time, duration, type, comment FROM acts WHERE id = $1`, id).
		Scan(&act.ID, &act.DateTime, &act.Duration, &act.Type, &act.Comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query act", err, nil)
		return nil, fmt.Errorf("failed to query act: %w", err)
	}

	return &act, nil
}

func (r *ActRepository) List(ctx context.Context, limit, offset int) ([]domain.Act, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ActRepository",
		"method":    "List",
	})

	rows, err := r.pool.Query(ctx,
		`SELECT id, date_time, duration, type, comment FROM acts
		 ORDER BY date_time DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query acts", err, nil)
		return nil, fmt.Errorf("failed to query acts: %w", err)
	}
	defer rows.Close()

	acts := make([]domain.Act, 0)
	for rows.Next() {
		var act domain.Act
		if err := rows.Scan(&act.ID, &act.DateTime, &act.Duration, &act.Type, &act.Comment); err != nil {
			repoLogger.Error("Failed to scan act row", err, nil)
			return nil, fmt.Errorf("failed to scan act: %w", err)
		}
		acts = append(acts, act)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during acts iteration", err, nil)
		return nil, fmt.Errorf("error during acts iteration: %w", err)
	}

	return acts, nil
}
