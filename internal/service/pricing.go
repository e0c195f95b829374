package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PricingService resolves the rate table, membership and promo context,
// then delegates to the pure price computation. A missing membership or
// promo code never fails the calculation.
type PricingService struct {
	rates       ports.RateRepo
	memberships ports.MembershipRepo
	promos      ports.PromoRepo
	logger      logger.Logger
}

func NewPricingService(
	rates ports.RateRepo,
	memberships ports.MembershipRepo,
	promos ports.PromoRepo,
	logger logger.Logger,
) *PricingService {
	return &PricingService{
		rates:       rates,
		memberships: memberships,
		promos:      promos,
		logger:      logger,
	}
}

func (s *PricingService) Calculate(ctx context.Context, req domain.PriceRequest) (*domain.PriceBreakdown, error) {
	table, err := s.rates.ActiveTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rate table: %w", err)
	}

	var membership *domain.Membership
	if req.CustomerRef != "" {
		membership, err = s.memberships.GetByCustomer(ctx, req.CustomerRef)
		if err != nil {
			if !errors.Is(err, domain.ErrMembershipNotFound) {
				return nil, fmt.Errorf("load membership: %w", err)
			}
			membership = nil
		}
	}

	var promo *domain.PromoCode
	promoMissing := false
	if req.PromoCode != "" {
		promo, err = s.promos.GetByCode(ctx, req.PromoCode)
		if err != nil {
			if !errors.Is(err, domain.ErrPromoNotFound) {
				return nil, fmt.Errorf("load promo code: %w", err)
			}
			promo = nil
			promoMissing = true
		}
	}

	breakdown, err := domain.ComputePrice(table, req.Selections, membership, promo)
	if err != nil {
		return nil, err
	}
	if promoMissing {
		breakdown.PromoWarning = fmt.Sprintf("promo code %q does not exist", req.PromoCode)
	}

	return breakdown, nil
}
