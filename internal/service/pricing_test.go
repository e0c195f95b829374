package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPricingService(t *testing.T) (*PricingService, *mocks.MockRateRepo, *mocks.MockMembershipRepo, *mocks.MockPromoRepo) {
	t.Helper()
	rates := mocks.NewMockRateRepo(t)
	memberships := mocks.NewMockMembershipRepo(t)
	promos := mocks.NewMockPromoRepo(t)

	svc := NewPricingService(rates, memberships, promos, newTestLogger(t))
	return svc, rates, memberships, promos
}

func TestPricingService_Calculate_NoMembership(t *testing.T) {
	svc, rates, memberships, _ := newPricingService(t)

	rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)

	breakdown, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections:  []domain.Selection{{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2}},
		CustomerRef: "cust-1",
	})

	require.NoError(t, err)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(150)))
	assert.True(t, breakdown.Discount.IsZero())
}

func TestPricingService_Calculate_MembershipDiscount(t *testing.T) {
	svc, rates, memberships, _ := newPricingService(t)

	percent := decimal.NewFromInt(20)
	membership := &domain.Membership{
		CustomerRef:     "cust-1",
		PlanTier:        "gold",
		DiscountPercent: &percent,
		RemainingHours:  decimal.NewFromInt(10),
	}
	rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(membership, nil)

	breakdown, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections:  []domain.Selection{{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2}},
		CustomerRef: "cust-1",
	})

	require.NoError(t, err)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(120)), "total = %s", breakdown.Total)
	assert.True(t, breakdown.Discount.Equal(decimal.NewFromInt(30)))
}

func TestPricingService_Calculate_AnonymousSkipsMembershipLookup(t *testing.T) {
	svc, rates, _, _ := newPricingService(t)

	rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)

	breakdown, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections: []domain.Selection{{Kind: domain.SelectionSimulator, UnitNumber: 1, DurationMin: 30}},
	})

	require.NoError(t, err)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(70)))
}

func TestPricingService_Calculate_MissingPromoWarns(t *testing.T) {
	svc, rates, memberships, promos := newPricingService(t)

	rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	promos.EXPECT().GetByCode(mock.Anything, "GHOST").Return(nil, domain.ErrPromoNotFound)

	breakdown, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections:  []domain.Selection{{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2}},
		CustomerRef: "cust-1",
		PromoCode:   "GHOST",
	})

	require.NoError(t, err)
	assert.Contains(t, breakdown.PromoWarning, "does not exist")
	assert.Zero(t, breakdown.BonusMinutes)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(150)))
}

func TestPricingService_Calculate_ActivePromoBonus(t *testing.T) {
	svc, rates, memberships, promos := newPricingService(t)

	rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, domain.ErrMembershipNotFound)
	promos.EXPECT().GetByCode(mock.Anything, "EXTRA15").Return(&domain.PromoCode{
		Code: "EXTRA15", BonusMinutes: 15, Active: true,
	}, nil)

	breakdown, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections:  []domain.Selection{{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2}},
		CustomerRef: "cust-1",
		PromoCode:   "EXTRA15",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, breakdown.BonusMinutes)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(150)))
}

func TestPricingService_Calculate_RateTableError(t *testing.T) {
	svc, rates, _, _ := newPricingService(t)

	rates.EXPECT().ActiveTable(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections: []domain.Selection{{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2}},
	})

	require.Error(t, err)
}

func TestPricingService_Calculate_MembershipRepoErrorPropagates(t *testing.T) {
	svc, rates, memberships, _ := newPricingService(t)

	rates.EXPECT().ActiveTable(mock.Anything).Return(testRateTable(), nil)
	memberships.EXPECT().GetByCustomer(mock.Anything, "cust-1").Return(nil, errors.New("db error"))

	_, err := svc.Calculate(context.Background(), domain.PriceRequest{
		Selections:  []domain.Selection{{Kind: domain.SelectionConsole, UnitNumber: 1, DurationMin: 60, Players: 2}},
		CustomerRef: "cust-1",
	})

	require.Error(t, err)
}
