package ports

import (
	"context"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/shopspring/decimal"
)

type ReservationRepo interface {
	// CreateSet commits every reservation of the request or none of
	// them, re-validating overlap and capacity inside the transaction.
	CreateSet(ctx context.Context, reservations []*domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
	ListOverlapping(ctx context.Context, date string, startMin, endMin int) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
	// UpdateWindow re-checks conflicts for the new window (excluding the
	// row itself) before applying an admin edit.
	UpdateWindow(ctx context.Context, id string, durationMin *int, price *decimal.Decimal) error
	CompleteFinished(ctx context.Context, date string, nowMin int) ([]*domain.Reservation, error)
}
