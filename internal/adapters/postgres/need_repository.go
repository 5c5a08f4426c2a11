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

const (
	needColumns = `n.id, n.client_id, n.realtor_id, n.property_type, n.address,
	       n.min_price, n.max_price, n.min_area, n.max_area, n.min_rooms, n.max_rooms,
	       n.min_floor, n.max_floor, n.min_floors, n.max_floors,
	       n.min_land_area, n.max_land_area, n.status,
	       c.id, c.last_name, c.first_name, c.patronymic, c.phone, c.email,
	       rt.id, rt.last_name, rt.first_name, rt.patronymic, rt.commission_share`

	needJoins = `JOIN clients c ON c.id = n.client_id
	       JOIN realtors rt ON rt.id = n.realtor_id`
)

func needScanDest(details *domain.NeedDetails) []interface{} {
	return []interface{}{
		&details.Need.ID, &details.Need.ClientID, &details.Need.RealtorID,
		&details.Need.PropertyType, &details.Need.Address,
		&details.Need.MinPrice, &details.Need.MaxPrice,
		&details.Need.MinArea, &details.Need.MaxArea,
		&details.Need.MinRooms, &details.Need.MaxRooms,
		&details.Need.MinFloor, &details.Need.MaxFloor,
		&details.Need.MinFloors, &details.Need.MaxFloors,
		&details.Need.MinLandArea, &details.Need.MaxLandArea,
		&details.Need.Status,
		&details.Client.ID, &details.Client.LastName, &details.Client.FirstName,
		&details.Client.Patronymic, &details.Client.Phone, &details.Client.Email,
		&details.Realtor.ID, &details.Realtor.LastName, &details.Realtor.FirstName,
		&details.Realtor.Patronymic, &details.Realtor.CommissionShare,
	}
}

// NeedRepository реализует port.NeedStoragePort для PostgreSQL.
type NeedRepository struct {
	pool *pgxpool.Pool
}

// NewNeedRepository - конструктор.
func NewNeedRepository(pool *pgxpool.Pool) (*NeedRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &NeedRepository{pool: pool}, nil
}

func (r *NeedRepository) Create(ctx context.Context, need domain.Need) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NeedRepository",
		"method":    "Create",
		"need_id":   need.ID,
	})

	query := `INSERT INTO needs (
	              id, client_id, realtor_id, property_type, address,
	              min_price, max_price, min_area, max_area, min_rooms, max_rooms,
	              min_floor, max_floor, min_floors, max_floors,
	              min_land_area, max_land_area, status
	          ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, query,
		need.ID, need.ClientID, need.RealtorID, need.PropertyType, need.Address,
		need.MinPrice, need.MaxPrice, need.MinArea, need.MaxArea, need.MinRooms, need.MaxRooms,
		need.MinFloor, need.MaxFloor, need.MinFloors, need.MaxFloors,
		need.MinLandArea, need.MaxLandArea, need.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.InvalidInput("need references a non-existent client or realtor")
		}
		repoLogger.Error("Failed to insert need", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert need: %w", err)
	}

	repoLogger.Debug("Need inserted.", nil)
	return nil
}

// Update изменяет только свободную потребность: условие status = 'open'
// входит в сам запрос, чтобы не было гонки с созданием сделки.
func (r *NeedRepository) Update(ctx context.Context, need domain.Need) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NeedRepository",
		"method":    "Update",
		"need_id":   need.ID,
	})

	query := `UPDATE needs
	          SET client_id = $2, realtor_id = $3, property_type = $4, address = $5,
	              min_price = $6, max_price = $7, min_area = $8, max_area = $9,
	              min_rooms = $10, max_rooms = $11, min_floor = $12, max_floor = $13,
	              min_floors = $14, max_floors = $15, min_land_area = $16, max_land_area = $17
	          WHERE id = $1 AND status = 'open'`

	cmdTag, err := r.pool.Exec(ctx, query,
		need.ID, need.ClientID, need.RealtorID, need.PropertyType, need.Address,
		need.MinPrice, need.MaxPrice, need.MinArea, need.MaxArea,
		need.MinRooms, need.MaxRooms, need.MinFloor, need.MaxFloor,
		need.MinFloors, need.MaxFloors, need.MinLandArea, need.MaxLandArea)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.InvalidInput("need references a non-existent client or realtor")
		}
		repoLogger.Error("Failed to update need", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update need: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.openGuardError(ctx, need.ID)
	}

	repoLogger.Debug("Need updated.", nil)
	return nil
}

// Delete удаляет только свободную потребность.
func (r *NeedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NeedRepository",
		"method":    "Delete",
		"need_id":   id,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM needs WHERE id = $1 AND status = 'open'`, id)
	if err != nil {
		repoLogger.Error("Failed to delete need", err, nil)
		return fmt.Errorf("failed to delete need: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.openGuardError(ctx, id)
	}

	repoLogger.Debug("Need deleted.", nil)
	return nil
}

// openGuardError различает отсутствие записи и связанную запись,
// когда запрос с условием status = 'open' ничего не изменил.
func (r *NeedRepository) openGuardError(ctx context.Context, id uuid.UUID) error {
	var status domain.ListingStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM needs WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to check need status: %w", err)
	}
	return domain.ErrAlreadyBound
}

func (r *NeedRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.NeedDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NeedRepository",
		"method":    "GetByID",
		"need_id":   id,
	})

	query := fmt.Sprintf(`SELECT %s FROM needs n %s WHERE n.id = $1`, needColumns, needJoins)

	var details domain.NeedDetails
	err := r.pool.QueryRow(ctx, query, id).Scan(needScanDest(&details)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query need", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query need: %w", err)
	}

	return &details, nil
}

func (r *NeedRepository) List(ctx context.Context, limit, offset int) ([]domain.NeedDetails, error) {
	query := fmt.Sprintf(`SELECT %s FROM needs n %s ORDER BY n.id LIMIT $1 OFFSET $2`, needColumns, needJoins)
	return r.queryNeeds(ctx, query, limit, offset)
}

func (r *NeedRepository) ListAll(ctx context.Context) ([]domain.NeedDetails, error) {
	query := fmt.Sprintf(`SELECT %s FROM needs n %s ORDER BY n.id`, needColumns, needJoins)
	return r.queryNeeds(ctx, query)
}

func (r *NeedRepository) queryNeeds(ctx context.Context, query string, args ...interface{}) ([]domain.NeedDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NeedRepository",
		"method":    "queryNeeds",
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query needs", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query needs: %w", err)
	}
	defer rows.Close()

	needs := make([]domain.NeedDetails, 0)
	for rows.Next() {
		var details domain.NeedDetails
		if err := rows.Scan(needScanDest(&details)...); err != nil {
			repoLogger.Error("Failed to scan need row", err, nil)
			return nil, fmt.Errorf("failed to scan need: %w", err)
		}
		needs = append(needs, details)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during needs iteration", err, nil)
		return nil, fmt.Errorf("error during needs iteration: %w", err)
	}

	return needs, nil
}
