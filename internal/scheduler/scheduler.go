package scheduler

import (
	"context"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type completionSweeper interface {
	CompleteFinished(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically flips confirmed reservations whose window has
// passed to completed.
type Scheduler struct {
	bookingService completionSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService completionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("failed to complete finished reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range completed {
		s.logger.Info("reservation completed",
			logger.String("reservation_id", r.ID),
			logger.String("date", r.Date),
			logger.String("customer_ref", r.CustomerRef),
		)
	}
}
