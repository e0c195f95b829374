package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	SlotStatuses(ctx context.Context, date string) ([]domain.Slot, error)
	DeviceAvailability(ctx context.Context, date string, startMin, durationMin int) (*domain.DeviceAvailability, error)
}

type PricingSvc interface {
	Calculate(ctx context.Context, req domain.PriceRequest) (*domain.PriceBreakdown, error)
}

type BookingSvc interface {
	Create(ctx context.Context, req domain.BookingRequest) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
	Update(ctx context.Context, id string, durationMin *int, price *decimal.Decimal) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}

type ClosureSvc interface {
	Add(ctx context.Context, input domain.CreateClosureInput) (*domain.Closure, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Closure, error)
}

type Handler struct {
	availabilityService AvailabilitySvc
	pricingService      PricingSvc
	bookingService      BookingSvc
	closureService      ClosureSvc
}

func NewHandler(
	availabilityService AvailabilitySvc,
	pricingService PricingSvc,
	bookingService BookingSvc,
	closureService ClosureSvc,
) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		pricingService:      pricingService,
		bookingService:      bookingService,
		closureService:      closureService,
	}
}

// Availability

func (h *Handler) Slots(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required", Code: "validation"})
		return
	}

	slots, err := h.availabilityService.SlotStatuses(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeviceAvailability(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required", Code: "validation"})
		return
	}

	startMin, err := domain.ParseClock(c.Query("time"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	durationMin, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "duration must be an integer number of minutes", Code: "validation"})
		return
	}

	availability, err := h.availabilityService.DeviceAvailability(c.Request.Context(), date, startMin, durationMin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Pricing

func (h *Handler) CalculatePrice(c *ginext.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	selections := make([]domain.Selection, 0, len(req.Selections))
	for _, s := range req.Selections {
		selections = append(selections, domain.Selection{
			Kind:        domain.SelectionKind(s.Type),
			UnitNumber:  s.UnitNumber,
			DurationMin: s.DurationMin,
			Players:     s.Players,
		})
	}

	breakdown, err := h.pricingService.Calculate(c.Request.Context(), domain.PriceRequest{
		Selections:  selections,
		CustomerRef: req.CustomerRef,
		PromoCode:   req.PromoCode,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceResponse(breakdown))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	startMin, err := domain.ParseClock(req.Time)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking := domain.BookingRequest{
		Kind:             domain.BookingKind(req.Kind),
		Date:             req.Date,
		StartMin:         startMin,
		CustomerRef:      req.CustomerRef,
		PromoCode:        req.PromoCode,
		PartyDurationMin: req.PartyDurationMin,
	}
	for _, sel := range req.Consoles {
		booking.Consoles = append(booking.Consoles, domain.ConsoleSelection{
			UnitNumber:  sel.UnitNumber,
			DurationMin: sel.DurationMin,
			Players:     sel.Players,
		})
	}
	if req.Simulator != nil {
		booking.Simulator = &domain.SimulatorSelection{DurationMin: req.Simulator.DurationMin}
	}

	reservations, err := h.bookingService.Create(c.Request.Context(), booking)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.CreateReservationResponse{
		ReservationIDs: make([]string, 0, len(reservations)),
		Reservations:   make([]dto.ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.ReservationIDs = append(resp.ReservationIDs, r.ID)
		resp.Reservations = append(resp.Reservations, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListReservations(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required", Code: "validation"})
		return
	}

	reservations, err := h.bookingService.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id", Code: "validation"})
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	var price *decimal.Decimal
	if req.Price != nil {
		parsed, err := decimal.NewFromString(*req.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price", Code: "validation"})
			return
		}
		price = &parsed
	}

	updated, err := h.bookingService.Update(c.Request.Context(), id, req.DurationMin, price)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(updated))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id", Code: "validation"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Closures

func (h *Handler) CreateClosure(c *ginext.Context) {
	var req dto.CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	input := domain.CreateClosureInput{
		Date:   req.Date,
		Type:   domain.ClosureType(req.Type),
		Reason: req.Reason,
	}
	if input.Type == domain.ClosureTimeRange {
		startMin, err := domain.ParseClock(req.StartTime)
		if err != nil {
			h.handleError(c, err)
			return
		}
		endMin, err := domain.ParseClock(req.EndTime)
		if err != nil {
			h.handleError(c, err)
			return
		}
		input.StartMin = startMin
		input.EndMin = endMin
	}

	closure, err := h.closureService.Add(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

func (h *Handler) ListClosures(c *ginext.Context) {
	closures, err := h.closureService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClosureResponse, 0, len(closures))
	for _, cl := range closures {
		resp = append(resp, dto.ToClosureResponse(cl))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteClosure(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid closure id", Code: "validation"})
		return
	}

	if err := h.closureService.Remove(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

// handleError maps domain errors to an HTTP status and a machine code
// so callers can tell "fix your input" from "re-query and retry".
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})

	case errors.Is(err, domain.ErrClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "closed"})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "conflict"})

	case errors.Is(err, domain.ErrCapacity):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "capacity"})

	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrClosureNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "not_found"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: "internal"})
	}
}
