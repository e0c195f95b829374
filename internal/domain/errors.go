package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrClosureNotFound     = errors.New("closure not found")
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrPromoNotFound       = errors.New("promo code not found")
	ErrRateTableNotFound   = errors.New("no active rate table")
)

var (
	ErrConflict = errors.New("device is no longer available for the requested window")
	ErrCapacity = errors.New("player ceiling would be exceeded")
	ErrClosed   = errors.New("venue is closed for the requested window")
)

var (
	ErrValidation = errors.New("validation error")
)
