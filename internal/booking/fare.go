package booking

import (
	"fmt"

	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// Age thresholds for the discount tiers. The child tier is checked first, so
// an impossible overlap can never arise.
const (
	childAgeLimit      = 12
	seniorAgeThreshold = 60

	childDiscountRate  = 0.25
	seniorDiscountRate = 0.30
)

// ComputeFare calculates the discount and final amount for a reservation.
// The subtotal is baseFarePerSeat times seatCount; passengers under 12 get
// 25% off, passengers 60 and over get 30% off, everyone else pays full fare.
func ComputeFare(baseFarePerSeat float64, seatCount, passengerAge int) (discount, finalAmount float64, err error) {
	if baseFarePerSeat <= 0 {
		return 0, 0, fmt.Errorf("%w: base fare must be positive, got %v", models.ErrInvalidFareInput, baseFarePerSeat)
	}
	if seatCount <= 0 {
		return 0, 0, fmt.Errorf("%w: seat count must be positive, got %d", models.ErrInvalidFareInput, seatCount)
	}
	if passengerAge < 0 {
		return 0, 0, fmt.Errorf("%w: age cannot be negative, got %d", models.ErrInvalidFareInput, passengerAge)
	}

	subtotal := baseFarePerSeat * float64(seatCount)

	switch {
	case passengerAge < childAgeLimit:
		discount = subtotal * childDiscountRate
	case passengerAge >= seniorAgeThreshold:
		discount = subtotal * seniorDiscountRate
	}

	return discount, subtotal - discount, nil
}
