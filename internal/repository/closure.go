package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClosureRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClosureRepo(db *dbpg.DB) *ClosureRepository {
	return &ClosureRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClosureRepository) Create(ctx context.Context, c *domain.Closure) error {
	query := `INSERT INTO closures (id, date, type, start_min, end_min, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Date, c.Type, c.StartMin, c.EndMin, c.Reason, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert closure: %w", err)
	}
	return nil
}

func (r *ClosureRepository) GetByID(ctx context.Context, id string) (*domain.Closure, error) {
	query := `SELECT id, date, type, start_min, end_min, reason, created_at
			  FROM closures
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get closure: %w", err)
	}

	c, err := scanClosure(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClosureNotFound
		}
		return nil, fmt.Errorf("scan closure: %w", err)
	}
	return c, nil
}

func (r *ClosureRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM closures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete closure: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("closure rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClosureNotFound
	}
	return nil
}

func (r *ClosureRepository) List(ctx context.Context) ([]*domain.Closure, error) {
	query := `SELECT id, date, type, start_min, end_min, reason, created_at
			  FROM closures
			  ORDER BY date, start_min`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}
	defer rows.Close()

	return collectClosures(rows)
}

func (r *ClosureRepository) ListByDate(ctx context.Context, date string) ([]*domain.Closure, error) {
	query := `SELECT id, date, type, start_min, end_min, reason, created_at
			  FROM closures
			  WHERE date = $1
			  ORDER BY start_min`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("list closures by date: %w", err)
	}
	defer rows.Close()

	return collectClosures(rows)
}

func scanClosure(scan func(dest ...any) error) (*domain.Closure, error) {
	var c domain.Closure
	var date time.Time
	if err := scan(&c.ID, &date, &c.Type, &c.StartMin, &c.EndMin, &c.Reason, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Date = date.Format(domain.DateLayout)
	return &c, nil
}

func collectClosures(rows *sql.Rows) ([]*domain.Closure, error) {
	var res []*domain.Closure
	for rows.Next() {
		c, err := scanClosure(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan closure: %w", err)
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
