package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CompletesFinished(t *testing.T) {
	sweeper := mocks.NewMockCompletionSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	completed := []*domain.Reservation{
		{ID: "r1", Date: "2026-09-01", CustomerRef: "cust-1"},
	}
	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sweeper := mocks.NewMockCompletionSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockCompletionSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockCompletionSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 30*time.Millisecond, log)

	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 3)
}
