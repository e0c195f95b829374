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

type PromoRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPromoRepo(db *dbpg.DB) *PromoRepository {
	return &PromoRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PromoRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `SELECT code, bonus_minutes, active
			  FROM promo_codes
			  WHERE code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get promo code: %w", err)
	}

	var p domain.PromoCode
	if err = row.Scan(&p.Code, &p.BonusMinutes, &p.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("scan promo code: %w", err)
	}

	return &p, nil
}
