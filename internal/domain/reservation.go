package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

type ReservationKind string

const (
	ReservationKindDevice ReservationKind = "device"
	ReservationKindParty  ReservationKind = "party"
)

// Reservation is one committed row. A party reservation is a single row
// with no unit number that occupies every device at once. The occupied
// window is [StartMin, StartMin+DurationMin+BonusMin): promo bonus
// minutes extend the session but never the priced duration.
type Reservation struct {
	ID          string            `json:"id"`
	Kind        ReservationKind   `json:"kind"`
	DeviceType  DeviceType        `json:"device_type,omitempty"`
	UnitNumber  int               `json:"unit_number,omitempty"`
	Date        string            `json:"date"`
	StartMin    int               `json:"start_min"`
	DurationMin int               `json:"duration_min"`
	BonusMin    int               `json:"bonus_min"`
	Players     int               `json:"players,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	Status      ReservationStatus `json:"status"`
	CustomerRef string            `json:"customer_ref"`
	PromoCode   string            `json:"promo_code,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (r *Reservation) EndMin() int {
	return r.StartMin + r.DurationMin + r.BonusMin
}

func (r *Reservation) Active() bool {
	return r.Status != ReservationStatusCancelled
}

// OccupiesUnit reports whether the reservation blocks the given device
// unit. Party rows block everything.
func (r *Reservation) OccupiesUnit(t DeviceType, unit int) bool {
	if r.Kind == ReservationKindParty {
		return true
	}
	return r.DeviceType == t && r.UnitNumber == unit
}
