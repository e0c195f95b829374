package domain

import "fmt"

// CheckAllocation verifies that the incoming reservation set can coexist
// with the existing rows for the same date. It is the authoritative
// no-overlap and capacity check; the repository runs it inside the
// commit transaction so racing commits observe each other.
func CheckAllocation(existing, incoming []*Reservation, inv Inventory) error {
	for i, n := range incoming {
		nEnd := n.EndMin()

		for _, e := range existing {
			if !e.Active() || e.Date != n.Date {
				continue
			}
			if !Overlaps(n.StartMin, nEnd, e.StartMin, e.EndMin()) {
				continue
			}
			if n.Kind == ReservationKindParty || e.Kind == ReservationKindParty {
				return fmt.Errorf("%w: window %s-%s", ErrConflict,
					FormatClock(n.StartMin), FormatClock(nEnd))
			}
			if e.DeviceType == n.DeviceType && e.UnitNumber == n.UnitNumber {
				return fmt.Errorf("%w: %s unit %d at %s", ErrConflict,
					n.DeviceType, n.UnitNumber, FormatClock(n.StartMin))
			}
		}

		// Rows of the same request must not collide either.
		for j, o := range incoming {
			if i == j || !Overlaps(n.StartMin, nEnd, o.StartMin, o.EndMin()) {
				continue
			}
			if n.Kind == ReservationKindParty || o.Kind == ReservationKindParty ||
				(o.DeviceType == n.DeviceType && o.UnitNumber == n.UnitNumber) {
				return fmt.Errorf("%w: request selects the same device twice", ErrConflict)
			}
		}

		if n.DeviceType == DeviceConsole && n.Kind == ReservationKindDevice {
			if err := checkCeiling(existing, incoming, n, inv.PlayerCeiling); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkCeiling(existing, incoming []*Reservation, n *Reservation, ceiling int) error {
	players := 0
	nEnd := n.EndMin()

	for _, e := range existing {
		if !e.Active() || e.Date != n.Date || e.DeviceType != DeviceConsole || e.Kind != ReservationKindDevice {
			continue
		}
		if Overlaps(n.StartMin, nEnd, e.StartMin, e.EndMin()) {
			players += e.Players
		}
	}
	for _, o := range incoming {
		if o.DeviceType != DeviceConsole || o.Kind != ReservationKindDevice {
			continue
		}
		if Overlaps(n.StartMin, nEnd, o.StartMin, o.EndMin()) {
			players += o.Players
		}
	}

	if players > ceiling {
		return fmt.Errorf("%w: %d players would overlap at %s, ceiling is %d",
			ErrCapacity, players, FormatClock(n.StartMin), ceiling)
	}
	return nil
}
