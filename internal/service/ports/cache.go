package ports

import (
	"context"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
)

// SlotCache holds advisory slot grids. A stale or missing entry is
// never an error: reads fall through to the database.
type SlotCache interface {
	GetSlots(ctx context.Context, date string) ([]domain.Slot, bool)
	SetSlots(ctx context.Context, date string, slots []domain.Slot)
	Invalidate(ctx context.Context, date string)
}
