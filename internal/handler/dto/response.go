package dto

import (
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
)

type SlotResponse struct {
	Time          string `json:"time"`
	Status        string `json:"status"`
	PlayersBooked int    `json:"players_booked"`
}

type AvailabilityResponse struct {
	AvailableConsoleUnits   []int  `json:"available_console_units"`
	SimulatorAvailable      bool   `json:"simulator_available"`
	TotalPlayersOverlapping int    `json:"total_players_overlapping"`
	Closed                  bool   `json:"closed"`
	ClosureReason           string `json:"closure_reason,omitempty"`
}

type PriceResponse struct {
	Total        string `json:"total"`
	Original     string `json:"original"`
	Discount     string `json:"discount"`
	HoursUsed    string `json:"hours_used,omitempty"`
	BonusMinutes int    `json:"bonus_minutes,omitempty"`
	HoursWarning string `json:"hours_warning,omitempty"`
	PromoWarning string `json:"promo_warning,omitempty"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	DeviceType  string `json:"device_type,omitempty"`
	UnitNumber  int    `json:"unit_number,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration_min"`
	BonusMin    int    `json:"bonus_min,omitempty"`
	Players     int    `json:"players,omitempty"`
	Price       string `json:"price"`
	Status      string `json:"status"`
	CustomerRef string `json:"customer_ref"`
	CreatedAt   string `json:"created_at"`
}

type CreateReservationResponse struct {
	ReservationIDs []string              `json:"reservation_ids"`
	Reservations   []ReservationResponse `json:"reservations"`
}

type ClosureResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func ToSlotResponse(s domain.Slot) SlotResponse {
	return SlotResponse{
		Time:          domain.FormatClock(s.StartMin),
		Status:        string(s.Status),
		PlayersBooked: s.PlayersBooked,
	}
}

func ToAvailabilityResponse(a *domain.DeviceAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		AvailableConsoleUnits:   a.AvailableConsoleUnits,
		SimulatorAvailable:      a.SimulatorAvailable,
		TotalPlayersOverlapping: a.TotalPlayersOverlapping,
		Closed:                  a.Closed,
		ClosureReason:           a.ClosureReason,
	}
}

func ToPriceResponse(b *domain.PriceBreakdown) PriceResponse {
	resp := PriceResponse{
		Total:        b.Total.StringFixed(2),
		Original:     b.Original.StringFixed(2),
		Discount:     b.Discount.StringFixed(2),
		BonusMinutes: b.BonusMinutes,
		HoursWarning: b.HoursWarning,
		PromoWarning: b.PromoWarning,
	}
	if b.HoursUsed.IsPositive() {
		resp.HoursUsed = b.HoursUsed.String()
	}
	return resp
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		Kind:        string(r.Kind),
		DeviceType:  string(r.DeviceType),
		UnitNumber:  r.UnitNumber,
		Date:        r.Date,
		Time:        domain.FormatClock(r.StartMin),
		DurationMin: r.DurationMin,
		BonusMin:    r.BonusMin,
		Players:     r.Players,
		Price:       r.Price.StringFixed(2),
		Status:      string(r.Status),
		CustomerRef: r.CustomerRef,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToClosureResponse(c *domain.Closure) ClosureResponse {
	resp := ClosureResponse{
		ID:        c.ID,
		Date:      c.Date,
		Type:      string(c.Type),
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.Type == domain.ClosureTimeRange {
		resp.StartTime = domain.FormatClock(c.StartMin)
		resp.EndTime = domain.FormatClock(c.EndMin)
	}
	return resp
}
