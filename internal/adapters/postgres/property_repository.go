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

// Колонки и JOIN-ы, общие для всех запросов, читающих объект недвижимости.
// Вариантные таблицы подключаются через LEFT JOIN, тип определяет,
// какие значения попадут в Details.
const (
	propertyColumns = `p.id, p.type, p.city, p.street, p.house_number, p.apartment_number,
	       p.latitude, p.longitude,
	       a.floor, a.rooms, a.area,
	       h.floors, h.rooms, h.area,
	       l.area`

	propertyJoins = `LEFT JOIN apartments a ON a.property_id = p.id
	       LEFT JOIN houses h ON h.property_id = p.id
	       LEFT JOIN lands l ON l.property_id = p.id`
)

// propertyScan аккумулирует колонки одного объекта при сканировании.
type propertyScan struct {
	property domain.Property

	aptFloor    *int
	aptRooms    *int
	aptArea     *float64
	houseFloors *int
	houseRooms  *int
	houseArea   *float64
	landArea    *float64
}

func (s *propertyScan) dest() []interface{} {
	return []interface{}{
		&s.property.ID, &s.property.Type, &s.property.City, &s.property.Street,
		&s.property.HouseNumber, &s.property.ApartmentNumber,
		&s.property.Latitude, &s.property.Longitude,
		&s.aptFloor, &s.aptRooms, &s.aptArea,
		&s.houseFloors, &s.houseRooms, &s.houseArea,
		&s.landArea,
	}
}

func (s *propertyScan) result() domain.Property {
	p := s.property
	switch p.Type {
	case domain.PropertyTypeApartment:
		p.Details = domain.ApartmentDetails{Floor: s.aptFloor, Rooms: s.aptRooms, Area: s.aptArea}
	case domain.PropertyTypeHouse:
		p.Details = domain.HouseDetails{Floors: s.houseFloors, Rooms: s.houseRooms, Area: s.houseArea}
	case domain.PropertyTypeLand:
		p.Details = domain.LandDetails{Area: s.landArea}
	}
	return p
}

// PropertyRepository реализует port.PropertyStoragePort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository - конструктор.
func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

// Create сохраняет объект и его вариантную часть в одной транзакции.
// Возвращает признак того, что отпечаток объекта уже встречался.
func (r *PropertyRepository) Create(ctx context.Context, property domain.Property) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Create",
		"property_id": property.ID,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	fingerprint := propertyFingerprint(property)

	var duplicate bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM properties WHERE fingerprint = $1)`, fingerprint).Scan(&duplicate)
	if err != nil {
		repoLogger.Error("Failed to check property fingerprint", err, nil)
		return false, fmt.Errorf("failed to check property fingerprint: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO properties (id, type, city, street, house_number, apartment_number, latitude, longitude, fingerprint)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		property.ID, property.Type, property.City, property.Street,
		property.HouseNumber, property.ApartmentNumber, property.Latitude, property.Longitude, fingerprint)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return false, fmt.Errorf("failed to insert property: %w", err)
	}

	if err := insertPropertyDetails(ctx, tx, property); err != nil {
		repoLogger.Error("Failed to insert property details", err, nil)
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if duplicate {
		repoLogger.Warn("Property fingerprint already exists.", port.Fields{"fingerprint": fingerprint})
	}
	repoLogger.Debug("Property inserted.", nil)
	return duplicate, nil
}

func insertPropertyDetails(ctx context.Context, tx pgx.Tx, property domain.Property) error {
	var err error
	switch details := property.Details.(type) {
	case domain.ApartmentDetails:
		_, err = tx.Exec(ctx,
			`INSERT INTO apartments (property_id, floor, rooms, area) VALUES ($1, $2, $3, $4)`,
			property.ID, details.Floor, details.Rooms, details.Area)
	case domain.HouseDetails:
		_, err = tx.Exec(ctx,
			`INSERT INTO houses (property_id, floors, rooms, area) VALUES ($1, $2, $3, $4)`,
			property.ID, details.Floors, details.Rooms, details.Area)
	case domain.LandDetails:
		_, err = tx.Exec(ctx,
			`INSERT INTO lands (property_id, area) VALUES ($1, $2)`,
			property.ID, details.Area)
	default:
		return fmt.Errorf("unknown property details type %T", property.Details)
	}
	if err != nil {
		return fmt.Errorf("failed to insert property details: %w", err)
	}
	return nil
}

// Update перезаписывает объект и его вариантную часть. Категория объекта
// может измениться, поэтому старые вариантные строки удаляются.
func (r *PropertyRepository) Update(ctx context.Context, property domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Update",
		"property_id": property.ID,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE properties
		 SET type = $2, city = $3, street = $4, house_number = $5, apartment_number = $6,
		     latitude = $7, longitude = $8, fingerprint = $9
		 WHERE id = $1`,
		property.ID, property.Type, property.City, property.Street,
		property.HouseNumber, property.ApartmentNumber,
		property.Latitude, property.Longitude, propertyFingerprint(property))
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	for _, query := range []string{
		`DELETE FROM apartments WHERE property_id = $1`,
		`DELETE FROM houses WHERE property_id = $1`,
		`DELETE FROM lands WHERE property_id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, property.ID); err != nil {
			repoLogger.Error("Failed to clear property details", err, nil)
			return fmt.Errorf("failed to clear property details: %w", err)
		}
	}

	if err := insertPropertyDetails(ctx, tx, property); err != nil {
		repoLogger.Error("Failed to insert property details", err, nil)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Property updated.", nil)
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Delete",
		"property_id": id,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		// Объект может фигурировать в предложениях.
		if isForeignKeyViolation(err) {
			repoLogger.Warn("Property is referenced by offers.", nil)
			return domain.ErrHasRelations
		}
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	repoLogger.Debug("Property deleted.", nil)
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "GetByID",
		"property_id": id,
	})

	query := fmt.Sprintf(`SELECT %s FROM properties p %s WHERE p.id = $1`, propertyColumns, propertyJoins)

	var scan propertyScan
	err := r.pool.QueryRow(ctx, query, id).Scan(scan.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query property", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query property: %w", err)
	}

	property := scan.result()
	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context, filters port.PropertyFilters, limit, offset int) ([]domain.Property, error) {
	whereClause, args := applyPropertyFilters(filters)

	query := fmt.Sprintf(`SELECT %s FROM properties p %s %s ORDER BY p.city, p.street, p.id LIMIT $%d OFFSET $%d`,
		propertyColumns, propertyJoins, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.queryProperties(ctx, query, args...)
}

func (r *PropertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p %s ORDER BY p.city, p.street, p.id`,
		propertyColumns, propertyJoins)
	return r.queryProperties(ctx, query)
}

func (r *PropertyRepository) ListWithCoordinates(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p %s
		WHERE p.latitude IS NOT NULL AND p.longitude IS NOT NULL
		ORDER BY p.city, p.street, p.id`,
		propertyColumns, propertyJoins)
	return r.queryProperties(ctx, query)
}

func (r *PropertyRepository) queryProperties(ctx context.Context, query string, args ...interface{}) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "queryProperties",
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		var scan propertyScan
		if err := rows.Scan(scan.dest()...); err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, scan.result())
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during properties iteration", err, nil)
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}

	return properties, nil
}
