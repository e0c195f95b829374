package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, kind, device_type, unit_number, date, start_min, duration_min,
bonus_min, players, price, status, customer_ref, promo_code, created_at, updated_at`

type ReservationRepository struct {
	db        *dbpg.DB
	inventory domain.Inventory
	strategy  retry.Strategy
}

func NewReservationRepo(db *dbpg.DB, inventory domain.Inventory) *ReservationRepository {
	return &ReservationRepository{
		db:        db,
		inventory: inventory,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateSet inserts the whole reservation set atomically. The device
// rows are locked first so that two racing commits for the same date
// serialize; the loser re-reads the winner's rows and fails the
// allocation check instead of double-booking.
func (r *ReservationRepository) CreateSet(ctx context.Context, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return fmt.Errorf("%w: empty reservation set", domain.ErrValidation)
	}
	date := reservations[0].Date
	for _, res := range reservations {
		if res.Date != date {
			return fmt.Errorf("%w: reservation set spans multiple dates", domain.ErrValidation)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockDevices(ctx, tx); err != nil {
		return err
	}

	existing, err := activeRowsForDate(ctx, tx, date)
	if err != nil {
		return err
	}

	if err = domain.CheckAllocation(existing, reservations, r.inventory); err != nil {
		return err
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	for _, res := range reservations {
		_, err = tx.ExecContext(
			ctx, query,
			res.ID, res.Kind, res.DeviceType, res.UnitNumber, res.Date,
			res.StartMin, res.DurationMin, res.BonusMin, res.Players,
			res.Price, res.Status, res.CustomerRef, res.PromoCode,
			res.CreatedAt, res.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE date = $1 AND status <> $2
			  ORDER BY start_min, device_type, unit_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.ReservationStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list reservations by date: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListOverlapping(ctx context.Context, date string, startMin, endMin int) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE date = $1 AND status <> $2
			    AND start_min < $3
			    AND start_min + duration_min + bonus_min > $4`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.ReservationStatusCancelled, endMin, startMin)
	if err != nil {
		return nil, fmt.Errorf("list overlapping reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.ReservationStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		// Либо брони нет, либо она уже отменена
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: reservation is already cancelled", domain.ErrValidation)
	}

	return nil
}

// UpdateWindow applies an administrative duration/price edit. Extending
// the window can newly collide, so the conflict check reruns inside the
// same transaction with the row itself excluded.
func (r *ReservationRepository) UpdateWindow(ctx context.Context, id string, durationMin *int, price *decimal.Decimal) error {
	if durationMin == nil && price == nil {
		return fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockDevices(ctx, tx); err != nil {
		return err
	}

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1 AND status <> $2`
	current, err := scanReservation(tx.QueryRowContext(ctx, query, id, domain.ReservationStatusCancelled).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("load reservation: %w", err)
	}

	updated := *current
	if durationMin != nil {
		updated.DurationMin = *durationMin
	}
	if price != nil {
		updated.Price = *price
	}

	if durationMin != nil && updated.DurationMin > current.DurationMin {
		existing, err := activeRowsForDate(ctx, tx, current.Date)
		if err != nil {
			return err
		}
		others := existing[:0:0]
		for _, e := range existing {
			if e.ID != id {
				others = append(others, e)
			}
		}
		if err = domain.CheckAllocation(others, []*domain.Reservation{&updated}, r.inventory); err != nil {
			return err
		}
	}

	update := `UPDATE reservations
			   SET duration_min = $2, price = $3, updated_at = now()
			   WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, id, updated.DurationMin, updated.Price); err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	return tx.Commit()
}

// CompleteFinished flips confirmed reservations whose window has passed
// to completed and returns them for logging.
func (r *ReservationRepository) CompleteFinished(ctx context.Context, date string, nowMin int) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $1, updated_at = now()
			  WHERE status = $2
			    AND (date < $3 OR (date = $3 AND start_min + duration_min + bonus_min <= $4))
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusCompleted, domain.ReservationStatusConfirmed,
		date, nowMin,
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// lockDevices takes row locks on the whole device park in a stable
// order, serializing every write against the shared inventory.
func lockDevices(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT device_type, unit_number FROM devices ORDER BY device_type, unit_number FOR UPDATE`)
	if err != nil {
		return fmt.Errorf("lock devices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var deviceType string
		var unit int
		if err = rows.Scan(&deviceType, &unit); err != nil {
			return fmt.Errorf("scan device lock: %w", err)
		}
	}
	return rows.Err()
}

func activeRowsForDate(ctx context.Context, tx *sql.Tx, date string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE date = $1 AND status <> $2`
	rows, err := tx.QueryContext(ctx, query, date, domain.ReservationStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("load active reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var date time.Time
	if err := scan(
		&res.ID, &res.Kind, &res.DeviceType, &res.UnitNumber, &date,
		&res.StartMin, &res.DurationMin, &res.BonusMin, &res.Players,
		&res.Price, &res.Status, &res.CustomerRef, &res.PromoCode,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	res.Date = date.Format(domain.DateLayout)
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}
	return res, rows.Err()
}
