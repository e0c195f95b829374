package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ClosureService struct {
	repo   ports.ClosureRepo
	cache  ports.SlotCache
	logger logger.Logger
}

func NewClosureService(repo ports.ClosureRepo, cache ports.SlotCache, logger logger.Logger) *ClosureService {
	return &ClosureService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *ClosureService) Add(ctx context.Context, input domain.CreateClosureInput) (*domain.Closure, error) {
	if _, err := domain.ParseDate(input.Date); err != nil {
		return nil, err
	}

	switch input.Type {
	case domain.ClosureFullDay:
	case domain.ClosureTimeRange:
		if input.StartMin >= input.EndMin {
			return nil, fmt.Errorf("%w: a time_range closure needs start before end", domain.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown closure type %q", domain.ErrValidation, input.Type)
	}

	closure := &domain.Closure{
		ID:        uuid.New().String(),
		Date:      input.Date,
		Type:      input.Type,
		StartMin:  input.StartMin,
		EndMin:    input.EndMin,
		Reason:    input.Reason,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, closure); err != nil {
		return nil, fmt.Errorf("create closure: %w", err)
	}

	s.cache.Invalidate(ctx, input.Date)

	s.logger.Info("closure added",
		logger.String("closure_id", closure.ID),
		logger.String("date", closure.Date),
		logger.String("type", string(closure.Type)),
	)

	return closure, nil
}

func (s *ClosureService) Remove(ctx context.Context, id string) error {
	closure, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, closure.Date)

	s.logger.Info("closure removed",
		logger.String("closure_id", id),
		logger.String("date", closure.Date),
	)

	return nil
}

func (s *ClosureService) List(ctx context.Context) ([]*domain.Closure, error) {
	return s.repo.List(ctx)
}
