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

type MembershipRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMembershipRepo(db *dbpg.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MembershipRepository) GetByCustomer(ctx context.Context, customerRef string) (*domain.Membership, error) {
	query := `SELECT customer_ref, plan_tier, discount_percent, hourly_rate, remaining_hours
			  FROM memberships
			  WHERE customer_ref = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, customerRef)
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}

	var m domain.Membership
	var percent, hourly decimal.NullDecimal
	if err = row.Scan(&m.CustomerRef, &m.PlanTier, &percent, &hourly, &m.RemainingHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("scan membership: %w", err)
	}
	if percent.Valid {
		m.DiscountPercent = &percent.Decimal
	}
	if hourly.Valid {
		m.HourlyRate = &hourly.Decimal
	}

	return &m, nil
}
