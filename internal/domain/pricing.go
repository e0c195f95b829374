package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type SelectionKind string

const (
	SelectionConsole   SelectionKind = "console"
	SelectionSimulator SelectionKind = "simulator"
	SelectionParty     SelectionKind = "party"
)

// Selection is one device pick inside a price or booking request.
type Selection struct {
	Kind        SelectionKind
	UnitNumber  int
	DurationMin int
	Players     int
}

// RateTable is the versioned fixed price table. Console prices are keyed
// by player count then duration; the simulator is single-occupancy and
// keyed by duration only. Party mode bypasses the table entirely and is
// billed at PartyHourly per hour.
type RateTable struct {
	Version     int
	Console     map[int]map[int]decimal.Decimal
	Simulator   map[int]decimal.Decimal
	PartyHourly decimal.Decimal
}

func (t *RateTable) ConsolePrice(players, durationMin int) (decimal.Decimal, error) {
	byDuration, ok := t.Console[players]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no console rate for %d players", ErrValidation, players)
	}
	price, ok := byDuration[durationMin]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no console rate for duration %d", ErrValidation, durationMin)
	}
	return price, nil
}

func (t *RateTable) SimulatorPrice(durationMin int) (decimal.Decimal, error) {
	price, ok := t.Simulator[durationMin]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no simulator rate for duration %d", ErrValidation, durationMin)
	}
	return price, nil
}

func (t *RateTable) PartyPrice(durationMin int) decimal.Decimal {
	hours := decimal.NewFromInt(int64(durationMin)).Div(decimal.NewFromInt(60))
	return t.PartyHourly.Mul(hours)
}

// Membership carries either a percent discount or a fixed discounted
// per-hour rate, applied to console time while the remaining
// discount-eligible hour balance lasts.
type Membership struct {
	CustomerRef     string
	PlanTier        string
	DiscountPercent *decimal.Decimal
	HourlyRate      *decimal.Decimal
	RemainingHours  decimal.Decimal
}

type PromoCode struct {
	Code         string
	BonusMinutes int
	Active       bool
}

// PriceBreakdown is the result of a price calculation. HoursWarning and
// PromoWarning are soft signals that never block the caller.
type PriceBreakdown struct {
	Total           decimal.Decimal
	Original        decimal.Decimal
	Discount        decimal.Decimal
	SelectionPrices []decimal.Decimal
	HoursUsed       decimal.Decimal
	BonusMinutes    int
	HoursWarning    string
	PromoWarning    string
}

// ComputePrice is a pure function of its arguments: identical inputs
// always yield an identical breakdown. Promo bonus minutes never change
// the total, only the session length the customer receives.
func ComputePrice(table *RateTable, selections []Selection, membership *Membership, promo *PromoCode) (*PriceBreakdown, error) {
	if table == nil {
		return nil, ErrRateTableNotFound
	}
	if len(selections) == 0 {
		return nil, fmt.Errorf("%w: at least one selection is required", ErrValidation)
	}

	breakdown := &PriceBreakdown{
		SelectionPrices: make([]decimal.Decimal, 0, len(selections)),
	}

	consoleOriginal := decimal.Zero
	consoleHours := decimal.Zero

	for _, sel := range selections {
		if !ValidDuration(sel.DurationMin) {
			return nil, fmt.Errorf("%w: duration %d is not bookable", ErrValidation, sel.DurationMin)
		}

		var price decimal.Decimal
		var err error
		switch sel.Kind {
		case SelectionConsole:
			if sel.Players <= 0 {
				return nil, fmt.Errorf("%w: player count must be positive", ErrValidation)
			}
			price, err = table.ConsolePrice(sel.Players, sel.DurationMin)
			if err != nil {
				return nil, err
			}
			consoleOriginal = consoleOriginal.Add(price)
			consoleHours = consoleHours.Add(minutesToHours(sel.DurationMin))
		case SelectionSimulator:
			price, err = table.SimulatorPrice(sel.DurationMin)
			if err != nil {
				return nil, err
			}
		case SelectionParty:
			price = table.PartyPrice(sel.DurationMin)
		default:
			return nil, fmt.Errorf("%w: unknown selection kind %q", ErrValidation, sel.Kind)
		}

		breakdown.SelectionPrices = append(breakdown.SelectionPrices, price)
		breakdown.Original = breakdown.Original.Add(price)
	}

	breakdown.Total = breakdown.Original

	if membership != nil && consoleHours.IsPositive() {
		discounted, covered, warning := applyMembership(membership, consoleOriginal, consoleHours)
		breakdown.Total = breakdown.Original.Sub(consoleOriginal).Add(discounted)
		breakdown.HoursUsed = covered
		breakdown.HoursWarning = warning
	}

	// Discount must never push the total above the table price.
	if breakdown.Total.GreaterThan(breakdown.Original) {
		breakdown.Total = breakdown.Original
	}
	breakdown.Discount = breakdown.Original.Sub(breakdown.Total)

	if promo != nil {
		if promo.Active {
			breakdown.BonusMinutes = promo.BonusMinutes
		} else {
			breakdown.PromoWarning = fmt.Sprintf("promo code %q is no longer active", promo.Code)
		}
	}

	return breakdown, nil
}

// RowPrices returns the per-selection prices to persist, with the
// membership discount spread across the console selections pro-rata by
// table price. The last console row absorbs the rounding remainder so
// the rows always sum to Total.
func (b *PriceBreakdown) RowPrices(selections []Selection) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(b.SelectionPrices))
	copy(prices, b.SelectionPrices)
	if b.Discount.IsZero() {
		return prices
	}

	consoleOriginal := decimal.Zero
	lastConsole := -1
	for i, sel := range selections {
		if sel.Kind == SelectionConsole {
			consoleOriginal = consoleOriginal.Add(b.SelectionPrices[i])
			lastConsole = i
		}
	}
	if lastConsole < 0 || !consoleOriginal.IsPositive() {
		return prices
	}

	remaining := b.Discount
	for i, sel := range selections {
		if sel.Kind != SelectionConsole {
			continue
		}
		cut := b.Discount.Mul(b.SelectionPrices[i]).Div(consoleOriginal).Round(2)
		if i == lastConsole {
			cut = remaining
		}
		prices[i] = prices[i].Sub(cut)
		remaining = remaining.Sub(cut)
	}
	return prices
}

// applyMembership re-bills the console portion for the hours covered by
// the remaining balance; the excess stays at full table rate pro-rata.
func applyMembership(m *Membership, consoleOriginal, consoleHours decimal.Decimal) (discounted, covered decimal.Decimal, warning string) {
	covered = consoleHours
	if m.RemainingHours.LessThan(consoleHours) {
		covered = m.RemainingHours
		if covered.IsNegative() {
			covered = decimal.Zero
		}
		warning = fmt.Sprintf(
			"membership covers only %s of %s requested hours, the excess is billed at full rate",
			m.RemainingHours.String(), consoleHours.String(),
		)
	}

	coveredFraction := covered.Div(consoleHours)

	switch {
	case m.HourlyRate != nil:
		uncovered := consoleHours.Sub(covered)
		discounted = m.HourlyRate.Mul(covered).
			Add(consoleOriginal.Mul(uncovered).Div(consoleHours))
	case m.DiscountPercent != nil:
		cut := consoleOriginal.
			Mul(*m.DiscountPercent).Div(decimal.NewFromInt(100)).
			Mul(coveredFraction)
		discounted = consoleOriginal.Sub(cut)
	default:
		discounted = consoleOriginal
	}

	if discounted.GreaterThan(consoleOriginal) {
		discounted = consoleOriginal
	}
	return discounted, covered, warning
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
}
