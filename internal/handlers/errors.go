package handlers

import (
	"errors"
	"net/http"

	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// statusForError maps domain errors to HTTP status codes. Every domain error
// is recoverable by the caller; only genuinely unknown errors become 500s.
func statusForError(err error) int {
	var invalidSeat *models.InvalidSeatError
	var unavailable *models.SeatUnavailableError

	switch {
	case errors.As(err, &invalidSeat), errors.Is(err, models.ErrInvalidFareInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrTripNotFound), errors.Is(err, models.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.As(err, &unavailable),
		errors.Is(err, models.ErrAlreadyCancelled),
		errors.Is(err, models.ErrDuplicateTripID),
		errors.Is(err, models.ErrTripHasActiveBookings):
		return http.StatusConflict
	case errors.Is(err, models.ErrPaymentFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
