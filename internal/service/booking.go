package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type priceCalculator interface {
	Calculate(ctx context.Context, req domain.PriceRequest) (*domain.PriceBreakdown, error)
}

// BookingService is the allocator: it validates a booking request,
// resolves chained start times, prices the selection and commits all
// rows atomically. The caller's earlier availability read is advisory;
// the repository re-checks inside the commit transaction.
type BookingService struct {
	reservations ports.ReservationRepo
	closures     ports.ClosureRepo
	promos       ports.PromoRepo
	pricing      priceCalculator
	cache        ports.SlotCache
	notifier     ports.ReservationNotifier
	inventory    domain.Inventory
	hours        domain.OperatingHours
	logger       logger.Logger
}

func NewBookingService(
	reservations ports.ReservationRepo,
	closures ports.ClosureRepo,
	promos ports.PromoRepo,
	pricing priceCalculator,
	cache ports.SlotCache,
	notifier ports.ReservationNotifier,
	inventory domain.Inventory,
	hours domain.OperatingHours,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		reservations: reservations,
		closures:     closures,
		promos:       promos,
		pricing:      pricing,
		cache:        cache,
		notifier:     notifier,
		inventory:    inventory,
		hours:        hours,
		logger:       logger,
	}
}

func (s *BookingService) Create(ctx context.Context, req domain.BookingRequest) ([]*domain.Reservation, error) {
	if _, err := domain.ParseDate(req.Date); err != nil {
		return nil, err
	}
	if req.CustomerRef == "" {
		return nil, fmt.Errorf("%w: customer reference is required", domain.ErrValidation)
	}

	bonus, err := s.resolveBonus(ctx, req.PromoCode)
	if err != nil {
		return nil, err
	}

	selections, reservations, err := s.buildReservations(req, bonus)
	if err != nil {
		return nil, err
	}

	for _, r := range reservations {
		if !s.hours.Contains(r.StartMin, r.EndMin()) {
			return nil, fmt.Errorf("%w: session %s-%s does not fit operating hours %s-%s",
				domain.ErrValidation,
				domain.FormatClock(r.StartMin), domain.FormatClock(r.EndMin()),
				domain.FormatClock(s.hours.OpenMin), domain.FormatClock(s.hours.CloseMin))
		}
	}

	closures, err := s.closures.ListByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}
	for _, r := range reservations {
		if blocking := domain.FindBlocking(closures, r.StartMin, r.EndMin()); blocking != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrClosed, blocking.Reason)
		}
	}

	breakdown, err := s.pricing.Calculate(ctx, domain.PriceRequest{
		Selections:  selections,
		CustomerRef: req.CustomerRef,
		PromoCode:   req.PromoCode,
	})
	if err != nil {
		return nil, fmt.Errorf("price booking: %w", err)
	}
	// Persist the discounted per-row prices so that the committed rows
	// sum to the same total a member was quoted.
	rowPrices := breakdown.RowPrices(selections)
	for i, r := range reservations {
		r.Price = rowPrices[i]
	}

	if err = s.reservations.CreateSet(ctx, reservations); err != nil {
		return nil, fmt.Errorf("commit reservations: %w", err)
	}

	s.cache.Invalidate(ctx, req.Date)

	s.logger.Info("reservations committed",
		logger.String("date", req.Date),
		logger.String("kind", string(req.Kind)),
		logger.String("customer_ref", req.CustomerRef),
		logger.Int("count", len(reservations)),
	)

	go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), reservations)

	return reservations, nil
}

// resolveBonus looks up the promo code's bonus minutes. A missing or
// inactive code books without the bonus rather than failing.
func (s *BookingService) resolveBonus(ctx context.Context, code string) (int, error) {
	if code == "" {
		return 0, nil
	}
	promo, err := s.promos.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrPromoNotFound) {
			s.logger.Debug("promo code not found, booking without bonus",
				logger.String("code", code),
			)
			return 0, nil
		}
		return 0, fmt.Errorf("load promo code: %w", err)
	}
	if !promo.Active {
		return 0, nil
	}
	return promo.BonusMinutes, nil
}

// buildReservations turns the tagged request into concrete rows, one
// per device, with chained start times already resolved. Selections and
// rows share index order so per-row prices can be mapped back.
func (s *BookingService) buildReservations(req domain.BookingRequest, bonus int) ([]domain.Selection, []*domain.Reservation, error) {
	now := time.Now().UTC()

	switch req.Kind {
	case domain.BookingStandard, domain.BookingChained:
	case domain.BookingParty:
		if len(req.Consoles) > 0 || req.Simulator != nil {
			return nil, nil, fmt.Errorf("%w: a party booking claims the whole inventory, device selections are not allowed", domain.ErrValidation)
		}
		if !domain.ValidDuration(req.PartyDurationMin) {
			return nil, nil, fmt.Errorf("%w: duration %d is not bookable", domain.ErrValidation, req.PartyDurationMin)
		}
		selection := domain.Selection{Kind: domain.SelectionParty, DurationMin: req.PartyDurationMin}
		row := &domain.Reservation{
			ID:          uuid.New().String(),
			Kind:        domain.ReservationKindParty,
			Date:        req.Date,
			StartMin:    req.StartMin,
			DurationMin: req.PartyDurationMin,
			BonusMin:    bonus,
			Status:      domain.ReservationStatusConfirmed,
			CustomerRef: req.CustomerRef,
			PromoCode:   req.PromoCode,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return []domain.Selection{selection}, []*domain.Reservation{row}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown booking kind %q", domain.ErrValidation, req.Kind)
	}

	if len(req.Consoles) == 0 && req.Simulator == nil {
		return nil, nil, fmt.Errorf("%w: at least one device must be selected", domain.ErrValidation)
	}
	if req.Kind == domain.BookingChained && (len(req.Consoles) == 0 || req.Simulator == nil) {
		return nil, nil, fmt.Errorf("%w: a chained booking needs console sessions and a simulator session", domain.ErrValidation)
	}

	var selections []domain.Selection
	var reservations []*domain.Reservation

	seen := make(map[int]bool)
	maxConsoleMin := 0
	for _, c := range req.Consoles {
		if !s.inventory.ValidConsoleUnit(c.UnitNumber) {
			return nil, nil, fmt.Errorf("%w: console unit %d does not exist", domain.ErrValidation, c.UnitNumber)
		}
		if seen[c.UnitNumber] {
			return nil, nil, fmt.Errorf("%w: console unit %d selected twice", domain.ErrValidation, c.UnitNumber)
		}
		seen[c.UnitNumber] = true
		if !domain.ValidDuration(c.DurationMin) {
			return nil, nil, fmt.Errorf("%w: duration %d is not bookable", domain.ErrValidation, c.DurationMin)
		}
		if c.Players <= 0 || c.Players > s.inventory.MaxPlayersPerConsole {
			return nil, nil, fmt.Errorf("%w: player count must be between 1 and %d", domain.ErrValidation, s.inventory.MaxPlayersPerConsole)
		}
		if c.DurationMin+bonus > maxConsoleMin {
			maxConsoleMin = c.DurationMin + bonus
		}

		selections = append(selections, domain.Selection{
			Kind:        domain.SelectionConsole,
			UnitNumber:  c.UnitNumber,
			DurationMin: c.DurationMin,
			Players:     c.Players,
		})
		reservations = append(reservations, &domain.Reservation{
			ID:          uuid.New().String(),
			Kind:        domain.ReservationKindDevice,
			DeviceType:  domain.DeviceConsole,
			UnitNumber:  c.UnitNumber,
			Date:        req.Date,
			StartMin:    req.StartMin,
			DurationMin: c.DurationMin,
			BonusMin:    bonus,
			Players:     c.Players,
			Status:      domain.ReservationStatusConfirmed,
			CustomerRef: req.CustomerRef,
			PromoCode:   req.PromoCode,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if req.Simulator != nil {
		if !domain.ValidDuration(req.Simulator.DurationMin) {
			return nil, nil, fmt.Errorf("%w: duration %d is not bookable", domain.ErrValidation, req.Simulator.DurationMin)
		}

		// Chained simulator starts when the longest console session
		// (bonus minutes included) releases the customer.
		startMin := req.StartMin
		if req.Kind == domain.BookingChained {
			startMin += maxConsoleMin
		}

		selections = append(selections, domain.Selection{
			Kind:        domain.SelectionSimulator,
			UnitNumber:  1,
			DurationMin: req.Simulator.DurationMin,
		})
		reservations = append(reservations, &domain.Reservation{
			ID:          uuid.New().String(),
			Kind:        domain.ReservationKindDevice,
			DeviceType:  domain.DeviceSimulator,
			UnitNumber:  1,
			Date:        req.Date,
			StartMin:    startMin,
			DurationMin: req.Simulator.DurationMin,
			BonusMin:    bonus,
			Status:      domain.ReservationStatusConfirmed,
			CustomerRef: req.CustomerRef,
			PromoCode:   req.PromoCode,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return selections, reservations, nil
}

func (s *BookingService) Cancel(ctx context.Context, id string) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.reservations.Cancel(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, reservation.Date)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.String("date", reservation.Date),
	)

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), reservation)

	return nil
}

func (s *BookingService) Update(ctx context.Context, id string, durationMin *int, price *decimal.Decimal) (*domain.Reservation, error) {
	if durationMin != nil && !domain.ValidDuration(*durationMin) {
		return nil, fmt.Errorf("%w: duration %d is not bookable", domain.ErrValidation, *durationMin)
	}
	if price != nil && price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	if durationMin != nil {
		current, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// Shrinking can never newly collide; an extension has to fit
		// operating hours and stay clear of closures before the
		// repository reruns the device conflict check.
		if *durationMin > current.DurationMin {
			end := current.StartMin + *durationMin + current.BonusMin
			if !s.hours.Contains(current.StartMin, end) {
				return nil, fmt.Errorf("%w: extended session %s-%s does not fit operating hours %s-%s",
					domain.ErrValidation,
					domain.FormatClock(current.StartMin), domain.FormatClock(end),
					domain.FormatClock(s.hours.OpenMin), domain.FormatClock(s.hours.CloseMin))
			}
			closures, err := s.closures.ListByDate(ctx, current.Date)
			if err != nil {
				return nil, fmt.Errorf("list closures: %w", err)
			}
			if blocking := domain.FindBlocking(closures, current.StartMin, end); blocking != nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrClosed, blocking.Reason)
			}
		}
	}

	if err := s.reservations.UpdateWindow(ctx, id, durationMin, price); err != nil {
		return nil, err
	}

	updated, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, updated.Date)

	s.logger.Info("reservation updated",
		logger.String("reservation_id", id),
		logger.String("date", updated.Date),
	)

	return updated, nil
}

func (s *BookingService) ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	return s.reservations.ListByDate(ctx, date)
}

// CompleteFinished sweeps confirmed reservations whose window has passed.
func (s *BookingService) CompleteFinished(ctx context.Context) ([]*domain.Reservation, error) {
	now := time.Now().UTC()
	completed, err := s.reservations.CompleteFinished(
		ctx,
		now.Format(domain.DateLayout),
		now.Hour()*60+now.Minute(),
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("reservations completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
