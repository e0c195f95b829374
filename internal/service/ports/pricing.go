package ports

import (
	"context"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
)

type RateRepo interface {
	ActiveTable(ctx context.Context) (*domain.RateTable, error)
}

type MembershipRepo interface {
	GetByCustomer(ctx context.Context, customerRef string) (*domain.Membership, error)
}

type PromoRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}
