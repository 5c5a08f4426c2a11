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

// RealtorRepository реализует port.RealtorStoragePort для PostgreSQL.
// Доля комиссии хранится в numeric и читается без потери точности.
type RealtorRepository struct {
	pool *pgxpool.Pool
}

// NewRealtorRepository - конструктор.
func NewRealtorRepository(pool *pgxpool.Pool) (*RealtorRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &RealtorRepository{pool: pool}, nil
}

func (r *RealtorRepository) Create(ctx context.Context, realtor domain.Realtor) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "RealtorRepository",
		"method":     "Create",
		"realtor_id": realtor.ID,
	})

	query := `INSERT INTO realtors (id, last_name, first_name, patronymic, commission_share)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		realtor.ID, realtor.LastName, realtor.FirstName, realtor.Patronymic, realtor.CommissionShare)
	if err != nil {
		repoLogger.Error("Failed to insert realtor", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert realtor: %w", err)
	}

	repoLogger.Debug("Realtor inserted.", nil)
	return nil
}

func (r *RealtorRepository) Update(ctx context.Context, realtor domain.Realtor) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "RealtorRepository",
		"method":     "Update",
		"realtor_id": realtor.ID,
	})

	query := `UPDATE realtors
	          SET last_name = $2, first_name = $3, patronymic = $4, commission_share = $5
	          WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query,
		realtor.ID, realtor.LastName, realtor.FirstName, realtor.Patronymic, realtor.CommissionShare)
	if err != nil {
		repoLogger.Error("Failed to update realtor", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update realtor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Realtor updated.", nil)
	return nil
}

func (r *RealtorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "RealtorRepository",
		"method":     "Delete",
		"realtor_id": id,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM realtors WHERE id = $1`, id)
	if err != nil {
		// За риэлтором могут числиться потребности и предложения.
		if isForeignKeyViolation(err) {
			repoLogger.Warn("Realtor is referenced by needs or offers.", nil)
			return domain.ErrHasRelations
		}
		repoLogger.Error("Failed to delete realtor", err, nil)
		return fmt.Errorf("failed to delete realtor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Realtor deleted.", nil)
	return nil
}

func (r *RealtorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "RealtorRepository",
		"method":     "GetByID",
		"realtor_id": id,
	})

	query := `SELECT id, last_name, first_name, patronymic, commission_share FROM realtors WHERE id = $1`

	var realtor domain.Realtor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&realtor.ID, &realtor.LastName, &realtor.FirstName, &realtor.Patronymic, &realtor.CommissionShare)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query realtor", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query realtor: %w", err)
	}

	return &realtor, nil
}

func (r *RealtorRepository) List(ctx context.Context, limit, offset int) ([]domain.Realtor, error) {
	query := `SELECT id, last_name, first_name, patronymic, commission_share
	          FROM realtors ORDER BY last_name, first_name, id LIMIT $1 OFFSET $2`
	return r.queryRealtors(ctx, query, limit, offset)
}

func (r *RealtorRepository) ListAll(ctx context.Context) ([]domain.Realtor, error) {
	query := `SELECT id, last_name, first_name, patronymic, commission_share
	          FROM realtors ORDER BY last_name, first_name, id`
	return r.queryRealtors(ctx, query)
}

func (r *RealtorRepository) queryRealtors(ctx context.Context, query string, args ...interface{}) ([]domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "RealtorRepository",
		"method":    "queryRealtors",
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query realtors", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query realtors: %w", err)
	}
	defer rows.Close()

	realtors := make([]domain.Realtor, 0)
	for rows.Next() {
		var realtor domain.Realtor
		if err := rows.Scan(&realtor.ID, &realtor.LastName, &realtor.FirstName, &realtor.Patronymic, &realtor.CommissionShare); err != nil {
			repoLogger.Error("Failed to scan realtor row", err, nil)
			return nil, fmt.Errorf("failed to scan realtor: %w", err)
		}
		realtors = append(realtors, realtor)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during realtors iteration", err, nil)
		return nil, fmt.Errorf("error during realtors iteration: %w", err)
	}

	return realtors, nil
}
