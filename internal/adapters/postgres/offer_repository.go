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
	offerColumns = `o.id, o.client_id, o.realtor_id, o.property_id, o.price, o.status,
	       c.id, c.last_name, c.first_name, c.patronymic, c.phone, c.email,
	       rt.id, rt.last_name, rt.first_name, rt.patronymic, rt.commission_share`

	offerJoins = `JOIN clients c ON c.id = o.client_id
	       JOIN realtors rt ON rt.id = o.realtor_id
	       JOIN properties p ON p.id = o.property_id`
)

// offerScan аккумулирует колонки предложения со всеми связями.
type offerScan struct {
	details  domain.OfferDetails
	property propertyScan
}

func (s *offerScan) dest() []interface{} {
	dest := []interface{}{
		&s.details.Offer.ID, &s.details.Offer.ClientID, &s.details.Offer.RealtorID,
		&s.details.Offer.PropertyID, &s.details.Offer.Price, &s.details.Offer.Status,
		&s.details.Client.ID, &s.details.Client.LastName, &s.details.Client.FirstName,
		&s.details.Client.Patronymic, &s.details.Client.Phone, &s.details.Client.Email,
		&s.details.Realtor.ID, &s.details.Realtor.LastName, &s.details.Realtor.FirstName,
		&s.details.Realtor.Patronymic, &s.details.Realtor.CommissionShare,
	}
	return append(dest, s.property.dest()...)
}

func (s *offerScan) result() domain.OfferDetails {
	details := s.details
	details.Property = s.property.result()
	return details
}

// OfferRepository реализует port.OfferStoragePort для PostgreSQL.
type OfferRepository struct {
	pool *pgxpool.Pool
}

// NewOfferRepository - конструктор.
func NewOfferRepository(pool *pgxpool.Pool) (*OfferRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &OfferRepository{pool: pool}, nil
}

func (r *OfferRepository) Create(ctx context.Context, offer domain.Offer) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "OfferRepository",
		"method":    "Create",
		"offer_id":  offer.ID,
	})

	query := `INSERT INTO offers (id, client_id, realtor_id, property_id, price, status)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		offer.ID, offer.ClientID, offer.RealtorID, offer.PropertyID, offer.Price, offer.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.InvalidInput("offer references a non-existent client, realtor or property")
		}
		repoLogger.Error("Failed to insert offer", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert offer: %w", err)
	}

	repoLogger.Debug("Offer inserted.", nil)
	return nil
}

// Update изменяет только свободное предложение: условие status = 'open'
// входит в сам запрос, чтобы не было гонки с созданием сделки.
func (r *OfferRepository) Update(ctx context.Context, offer domain.Offer) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "OfferRepository",
		"method":    "Update",
		"offer_id":  offer.ID,
	})

	query := `UPDATE offers
	          SET client_id = $2, realtor_id = $3, property_id = $4, price = $5
	          WHERE id = $1 AND status = 'open'`

	cmdTag, err := r.pool.Exec(ctx, query,
		offer.ID, offer.ClientID, offer.RealtorID, offer.PropertyID, offer.Price)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.InvalidInput("offer references a non-existent client, realtor or property")
		}
		repoLogger.Error("Failed to update offer", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.openGuardError(ctx, offer.ID)
	}

	repoLogger.Debug("Offer updated.", nil)
	return nil
}

// Delete удаляет только свободное предложение.
func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "OfferRepository",
		"method":    "Delete",
		"offer_id":  id,
	})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1 AND status = 'open'`, id)
	if err != nil {
		repoLogger.Error("Failed to delete offer", err, nil)
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.openGuardError(ctx, id)
	}

	repoLogger.Debug("Offer deleted.", nil)
	return nil
}

// openGuardError различает отсутствие записи и связанную запись,
// когда запрос с условием status = 'open' ничего не изменил.
func (r *OfferRepository) openGuardError(ctx context.Context, id uuid.UUID) error {
	var status domain.ListingStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM offers WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to check offer status: %w", err)
	}
	return domain.ErrAlreadyBound
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "OfferRepository",
		"method":    "GetByID",
		"offer_id":  id,
	})

	query := fmt.Sprintf(`SELECT %s, %s FROM offers o %s %s WHERE o.id = $1`,
		offerColumns, propertyColumns, offerJoins, propertyJoins)

	var scan offerScan
	err := r.pool.QueryRow(ctx, query, id).Scan(scan.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query offer", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query offer: %w", err)
	}

	details := scan.result()
	return &details, nil
}

func (r *OfferRepository) List(ctx context.Context, limit, offset int) ([]domain.OfferDetails, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM offers o %s %s ORDER BY o.id LIMIT $1 OFFSET $2`,
		offerColumns, propertyColumns, offerJoins, propertyJoins)
	return r.queryOffers(ctx, query, limit, offset)
}

func (r *OfferRepository) ListAll(ctx context.Context) ([]domain.OfferDetails, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM offers o %s %s ORDER BY o.id`,
		offerColumns, propertyColumns, offerJoins, propertyJoins)
	return r.queryOffers(ctx, query)
}

func (r *OfferRepository) queryOffers(ctx context.Context, query string, args ...interface{}) ([]domain.OfferDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "OfferRepository",
		"method":    "queryOffers",
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query offers", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.OfferDetails, 0)
	for rows.Next() {
		var scan offerScan
		if err := rows.Scan(scan.dest()...); err != nil {
			repoLogger.Error("Failed to scan offer row", err, nil)
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, scan.result())
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during offers iteration", err, nil)
		return nil, fmt.Errorf("error during offers iteration: %w", err)
	}

	return offers, nil
}
