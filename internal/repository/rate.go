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

type RateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRateRepo(db *dbpg.DB) *RateRepository {
	return &RateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// ActiveTable loads the rate table version currently marked active.
// Entries use device_type 'party' for the flat hourly party rate and
// players=0 for the single-occupancy simulator.
func (r *RateRepository) ActiveTable(ctx context.Context) (*domain.RateTable, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT version FROM rate_tables WHERE active ORDER BY version DESC LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("get active rate version: %w", err)
	}

	var version int
	if err = row.Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRateTableNotFound
		}
		return nil, fmt.Errorf("scan rate version: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT device_type, players, duration_min, price
		 FROM rate_entries
		 WHERE version = $1`, version)
	if err != nil {
		return nil, fmt.Errorf("list rate entries: %w", err)
	}
	defer rows.Close()

	table := &domain.RateTable{
		Version:   version,
		Console:   make(map[int]map[int]decimal.Decimal),
		Simulator: make(map[int]decimal.Decimal),
	}

	for rows.Next() {
		var deviceType string
		var players, durationMin int
		var price decimal.Decimal
		if err = rows.Scan(&deviceType, &players, &durationMin, &price); err != nil {
			return nil, fmt.Errorf("scan rate entry: %w", err)
		}

		switch deviceType {
		case string(domain.DeviceConsole):
			if table.Console[players] == nil {
				table.Console[players] = make(map[int]decimal.Decimal)
			}
			table.Console[players][durationMin] = price
		case string(domain.DeviceSimulator):
			table.Simulator[durationMin] = price
		case "party":
			table.PartyHourly = price
		}
	}

	return table, rows.Err()
}
