package models

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	// BookingStatusPending exists only transiently while seats are validated
	// and payment is taken; pending bookings are never persisted.
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentMethod represents how a booking was paid for
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "net_banking"
	PaymentMethodCash       PaymentMethod = "cash"
)

// IsValid checks whether the payment method is one of the accepted options
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodCash:
		return true
	}
	return false
}

// Booking represents a passenger's reservation of seats on a trip
type Booking struct {
	ID            int           `json:"id"`
	Reference     string        `json:"reference"`
	PassengerName string        `json:"passenger_name"`
	Gender        string        `json:"gender"`
	Age           int           `json:"age"`
	Contact       string        `json:"contact"`
	TripID        int           `json:"trip_id"`
	Seats         []int         `json:"seats"`
	JourneyDate   string        `json:"journey_date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Discount      float64       `json:"discount"`
	FinalAmount   float64       `json:"final_amount"`
	Status        BookingStatus `json:"status"`
	RefundAmount  *float64      `json:"refund_amount,omitempty"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
	BookedAt      time.Time     `json:"booked_at"`
}

// IsActive reports whether the booking still holds its seats
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed
}

// CreateBookingRequest represents the request to book seats on a trip
type CreateBookingRequest struct {
	TripID        int           `json:"trip_id" binding:"required"`
	Seats         []int         `json:"seats" binding:"required,min=1"`
	PassengerName string        `json:"passenger_name" binding:"required"`
	Gender        string        `json:"gender" binding:"required"`
	Age           int           `json:"age" binding:"min=0"`
	Contact       string        `json:"contact" binding:"required"`
	JourneyDate   string        `json:"journey_date" binding:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required"`
}

// Validate validates the create booking request
func (r *CreateBookingRequest) Validate() error {
	if len(r.Seats) == 0 {
		return errors.New("at least one seat must be selected")
	}
	if r.Age < 0 {
		return errors.New("age cannot be negative")
	}
	if !r.PaymentMethod.IsValid() {
		return errors.New("payment_method must be one of: card, upi, net_banking, cash")
	}
	return nil
}

// CancelBookingRequest represents the request to cancel a booking. The caller
// supplies how many hours remain before departure; the refund tier follows
// from it.
type CancelBookingRequest struct {
	HoursBeforeDeparture int `json:"hours_before_departure" binding:"min=0"`
}

// BookingReceipt combines a booking with its trip details for display.
// The engine supplies structured data only; rendering belongs to the caller.
type BookingReceipt struct {
	Booking
	Trip     Trip    `json:"trip"`
	Subtotal float64 `json:"subtotal"`
}
