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
	dealColumns = `d.id, d.need_id, d.offer_id, d.created_at,
	       n.id, n.client_id, n.realtor_id, n.property_type, n.address,
	       n.min_price, n.max_price, n.min_area, n.max_area, n.min_rooms, n.max_rooms,
	       n.min_floor, n.max_floor, n.min_floors, n.max_floors,
	       n.min_land_area, n.max_land_area, n.status,
	       nc.id, nc.last_name, nc.first_name, nc.patronymic, nc.phone, nc.email,
	       nr.id, nr.last_name, nr.first_name, nr.patronymic, nr.commission_share,
	       o.id, o.client_id, o.realtor_id, o.property_id, o.price, o.status,
	       oc.id, oc.last_name, oc.first_name, oc.patronymic, oc.phone, oc.email,
	       ort.id, ort.last_name, ort.first_name, ort.patronymic, ort.commission_share`

	dealJoins = `JOIN needs n ON n.id = d.need_id
	       JOIN clients nc ON nc.id = n.client_id
	       JOIN realtors nr ON nr.id = n.realtor_id
	       JOIN offers o ON o.id = d.offer_id
	       JOIN clients oc ON oc.id = o.client_id
	       JOIN realtors ort ON ort.id = o.realtor_id
	       JOIN properties p ON p.id = o.property_id`
)

// dealScan аккумулирует колонки сделки со всеми ее связями.
type dealScan struct {
	deal  domain.Deal
	need  domain.NeedDetails
	offer offerScan
}

func (s *dealScan) dest() []interface{} {
	dest := []interface{}{&s.deal.ID, &s.deal.NeedID, &s.deal.OfferID, &s.deal.CreatedAt}
	dest = append(dest, needScanDest(&s.need)...)
	return append(dest, s.offer.dest()...)
}

func (s *dealScan) result() domain.DealDetails {
	return domain.DealDetails{
		Deal:  s.deal,
		Need:  s.need,
		Offer: s.offer.result(),
	}
}

// DealRepository реализует port.DealStoragePort для PostgreSQL.
type DealRepository struct {
	pool *pgxpool.Pool
}

// NewDealRepository - конструктор.
func NewDealRepository(pool *pgxpool.Pool) (*DealRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DealRepository{pool: pool}, nil
}

// Create связывает потребность и предложение в одной транзакции.
// Обе стороны блокируются через SELECT ... FOR UPDATE, поэтому из двух
// конкурентных вызовов с общей стороной выигрывает ровно один, второй
// увидит статус bound. Уникальные индексы на need_id и offer_id —
// последний рубеж на случай обхода блокировки.
func (r *DealRepository) Create(ctx context.Context, needID, offerID uuid.UUID) (*domain.Deal, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DealRepository",
		"method":    "Create",
		"need_id":   needID,
		"offer_id":  offerID,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockOpenListing(ctx, tx, "needs", needID); err != nil {
		return nil, err
	}
	if err := lockOpenListing(ctx, tx, "offers", offerID); err != nil {
		return nil, err
	}

	deal := domain.Deal{ID: uuid.New(), NeedID: needID, OfferID: offerID}
	err = tx.QueryRow(ctx,
		`INSERT INTO deals (id, need_id, offer_id) VALUES ($1, $2, $3) RETURNING created_at`,
		deal.ID, deal.NeedID, deal.OfferID).Scan(&deal.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyBound
		}
		repoLogger.Error("Failed to insert deal", err, nil)
		return nil, fmt.Errorf("failed to insert deal: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE needs SET status = 'bound' WHERE id = $1`, needID); err != nil {
		repoLogger.Error("Failed to bind need", err, nil)
		return nil, fmt.Errorf("failed to bind need: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE offers SET status = 'bound' WHERE id = $1`, offerID); err != nil {
		repoLogger.Error("Failed to bind offer", err, nil)
		return nil, fmt.Errorf("failed to bind offer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit transaction", err, nil)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Deal created.", port.Fields{"deal_id": deal.ID})
	return &deal, nil
}

// lockOpenListing берет блокировку строки и проверяет, что запись свободна.
func lockOpenListing(ctx context.Context, tx pgx.Tx, table string, id uuid.UUID) error {
	var status domain.ListingStatus
	query := fmt.Sprintf(`SELECT status FROM %s WHERE id = $1 FOR UPDATE`, table)
	err := tx.QueryRow(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to lock %s row: %w", table, err)
	}
	if status != domain.ListingStatusOpen {
		return domain.ErrAlreadyBound
	}
	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DealDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DealRepository",
		"method":    "GetByID",
		"deal_id":   id,
	})

	query := fmt.Sprintf(`SELECT %s, %s FROM deals d %s %s WHERE d.id = $1`,
		dealColumns, propertyColumns, dealJoins, propertyJoins)

	var scan dealScan
	err := r.pool.QueryRow(ctx, query, id).Scan(scan.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to query deal", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query deal: %w", err)
	}

	details := scan.result()
	return &details, nil
}

func (r *DealRepository) List(ctx context.Context, limit, offset int) ([]domain.DealDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DealRepository",
		"method":    "List",
	})

	query := fmt.Sprintf(`SELECT %s, %s FROM deals d %s %s ORDER BY d.created_at DESC, d.id LIMIT $1 OFFSET $2`,
		dealColumns, propertyColumns, dealJoins, propertyJoins)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query deals", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	deals := make([]domain.DealDetails, 0)
	for rows.Next() {
		var scan dealScan
		if err := rows.Scan(scan.dest()...); err != nil {
			repoLogger.Error("Failed to scan deal row", err, nil)
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, scan.result())
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during deals iteration", err, nil)
		return nil, fmt.Errorf("error during deals iteration: %w", err)
	}

	return deals, nil
}
