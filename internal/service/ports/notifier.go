package ports

import (
	"context"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationConfirmed(ctx context.Context, reservations []*domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, reservation *domain.Reservation)
}
