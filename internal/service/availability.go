package service

import (
	"context"
	"fmt"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService answers advisory availability queries. Results may
// be slightly stale: the commit path re-validates inside its own
// transaction and is the sole source of truth.
type AvailabilityService struct {
	reservations ports.ReservationRepo
	closures     ports.ClosureRepo
	cache        ports.SlotCache
	inventory    domain.Inventory
	hours        domain.OperatingHours
	slotStepMin  int
	logger       logger.Logger
}

func NewAvailabilityService(
	reservations ports.ReservationRepo,
	closures ports.ClosureRepo,
	cache ports.SlotCache,
	inventory domain.Inventory,
	hours domain.OperatingHours,
	slotStepMin int,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		reservations: reservations,
		closures:     closures,
		cache:        cache,
		inventory:    inventory,
		hours:        hours,
		slotStepMin:  slotStepMin,
		logger:       logger,
	}
}

// SlotStatuses renders the whole operating day as a slot grid.
func (s *AvailabilityService) SlotStatuses(ctx context.Context, date string) ([]domain.Slot, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	if slots, ok := s.cache.GetSlots(ctx, date); ok {
		return slots, nil
	}

	closures, err := s.closures.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}
	reservations, err := s.reservations.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	var slots []domain.Slot
	for start := s.hours.OpenMin; start+s.slotStepMin <= s.hours.CloseMin; start += s.slotStepMin {
		slots = append(slots, s.slotAt(start, start+s.slotStepMin, closures, reservations))
	}

	s.cache.SetSlots(ctx, date, slots)

	return slots, nil
}

func (s *AvailabilityService) slotAt(start, end int, closures []*domain.Closure, reservations []*domain.Reservation) domain.Slot {
	slot := domain.Slot{StartMin: start, Status: domain.SlotAvailable}

	if domain.FindBlocking(closures, start, end) != nil {
		slot.Status = domain.SlotFull
		return slot
	}

	busyConsoles := 0
	simulatorBusy := false
	party := false
	for _, r := range reservations {
		if !domain.Overlaps(start, end, r.StartMin, r.EndMin()) {
			continue
		}
		if r.Kind == domain.ReservationKindParty {
			party = true
			continue
		}
		switch r.DeviceType {
		case domain.DeviceConsole:
			busyConsoles++
			slot.PlayersBooked += r.Players
		case domain.DeviceSimulator:
			simulatorBusy = true
		}
	}

	switch {
	case party,
		busyConsoles >= s.inventory.ConsoleUnits && simulatorBusy,
		slot.PlayersBooked >= s.inventory.PlayerCeiling:
		slot.Status = domain.SlotFull
	case busyConsoles > 0 || simulatorBusy:
		slot.Status = domain.SlotPartial
	}

	return slot
}

// DeviceAvailability reports per-unit free/busy status for one candidate
// window. A window outside operating hours is invalid input, not
// "unavailable"; a closed venue reports every unit busy.
func (s *AvailabilityService) DeviceAvailability(ctx context.Context, date string, startMin, durationMin int) (*domain.DeviceAvailability, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	if !domain.ValidDuration(durationMin) {
		return nil, fmt.Errorf("%w: duration %d is not bookable", domain.ErrValidation, durationMin)
	}
	endMin := startMin + durationMin
	if !s.hours.Contains(startMin, endMin) {
		return nil, fmt.Errorf("%w: window %s-%s is outside operating hours %s-%s",
			domain.ErrValidation,
			domain.FormatClock(startMin), domain.FormatClock(endMin),
			domain.FormatClock(s.hours.OpenMin), domain.FormatClock(s.hours.CloseMin))
	}

	closures, err := s.closures.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}
	if blocking := domain.FindBlocking(closures, startMin, endMin); blocking != nil {
		return &domain.DeviceAvailability{
			AvailableConsoleUnits: []int{},
			Closed:                true,
			ClosureReason:         blocking.Reason,
		}, nil
	}

	overlapping, err := s.reservations.ListOverlapping(ctx, date, startMin, endMin)
	if err != nil {
		return nil, fmt.Errorf("list overlapping: %w", err)
	}

	availability := &domain.DeviceAvailability{
		AvailableConsoleUnits: []int{},
		SimulatorAvailable:    true,
	}
	for _, unit := range s.inventory.ConsoleUnitNumbers() {
		free := true
		for _, r := range overlapping {
			if r.OccupiesUnit(domain.DeviceConsole, unit) {
				free = false
				break
			}
		}
		if free {
			availability.AvailableConsoleUnits = append(availability.AvailableConsoleUnits, unit)
		}
	}
	for _, r := range overlapping {
		if r.OccupiesUnit(domain.DeviceSimulator, 1) {
			availability.SimulatorAvailable = false
		}
		if r.Kind == domain.ReservationKindDevice && r.DeviceType == domain.DeviceConsole {
			availability.TotalPlayersOverlapping += r.Players
		}
	}

	return availability, nil
}
