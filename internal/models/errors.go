package models

import (
	"errors"
	"fmt"
)

// Domain errors surfaced by the booking engine. All are recoverable at the
// call site; handlers map them to HTTP statuses.
var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrDuplicateTripID       = errors.New("trip id already exists")
	ErrTripHasActiveBookings = errors.New("trip has active bookings")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrPaymentFailed         = errors.New("payment failed")
	ErrInvalidFareInput      = errors.New("invalid fare input")
)

// InvalidSeatError reports a seat number that is out of range or appears
// more than once in a reservation request.
type InvalidSeatError struct {
	Seat int
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("invalid seat number: %d", e.Seat)
}

// SeatUnavailableError reports a seat that is already booked, including the
// case where another reservation won the seat between search and booking.
type SeatUnavailableError struct {
	Seat int
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %d is already booked", e.Seat)
}
