package ports

import (
	"context"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
)

type ClosureRepo interface {
	Create(ctx context.Context, c *domain.Closure) error
	GetByID(ctx context.Context, id string) (*domain.Closure, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Closure, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Closure, error)
}
