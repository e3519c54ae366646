package models

import (
	"errors"
	"time"
)

// TripCategory represents the service class of a trip
type TripCategory string

const (
	TripCategoryAC      TripCategory = "ac"
	TripCategoryNonAC   TripCategory = "non_ac"
	TripCategorySleeper TripCategory = "sleeper"
	TripCategoryExpress TripCategory = "express"
)

// IsValid checks whether the category is one of the known service classes
func (c TripCategory) IsValid() bool {
	switch c {
	case TripCategoryAC, TripCategoryNonAC, TripCategorySleeper, TripCategoryExpress:
		return true
	}
	return false
}

// Trip represents one scheduled vehicle run with a fixed seat capacity
type Trip struct {
	ID              int          `json:"id"`
	Operator        string       `json:"operator"`
	Category        TripCategory `json:"category"`
	Origin          string       `json:"origin"`
	Destination     string       `json:"destination"`
	DepartureTime   time.Time    `json:"departure_time"`
	TotalSeats      int          `json:"total_seats"`
	BaseFarePerSeat float64      `json:"base_fare_per_seat"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TripSummary provides a quick overview of seat availability for a trip
type TripSummary struct {
	Trip
	AvailableSeats int   `json:"available_seats"`
	BookedSeats    []int `json:"booked_seats"`
}

// CreateTripRequest represents the request to register a trip
type CreateTripRequest struct {
	ID              int          `json:"id" binding:"required"`
	Operator        string       `json:"operator" binding:"required"`
	Category        TripCategory `json:"category" binding:"required"`
	Origin          string       `json:"origin" binding:"required"`
	Destination     string       `json:"destination" binding:"required"`
	DepartureTime   time.Time    `json:"departure_time" binding:"required"`
	TotalSeats      int          `json:"total_seats" binding:"required"`
	BaseFarePerSeat float64      `json:"base_fare_per_seat" binding:"required"`
}

// Validate validates the create trip request
func (r *CreateTripRequest) Validate() error {
	if r.ID <= 0 {
		return errors.New("id must be positive")
	}
	if !r.Category.IsValid() {
		return errors.New("category must be one of: ac, non_ac, sleeper, express")
	}
	if r.TotalSeats < 1 {
		return errors.New("total_seats must be at least 1")
	}
	if r.BaseFarePerSeat <= 0 {
		return errors.New("base_fare_per_seat must be positive")
	}
	return nil
}

// UpdateTripRequest represents a partial update to a trip. Nil fields are
// left unchanged.
type UpdateTripRequest struct {
	Operator        *string       `json:"operator,omitempty"`
	Category        *TripCategory `json:"category,omitempty"`
	Origin          *string       `json:"origin,omitempty"`
	Destination     *string       `json:"destination,omitempty"`
	DepartureTime   *time.Time    `json:"departure_time,omitempty"`
	TotalSeats      *int          `json:"total_seats,omitempty"`
	BaseFarePerSeat *float64      `json:"base_fare_per_seat,omitempty"`
}

// Validate validates the update trip request
func (r *UpdateTripRequest) Validate() error {
	if r.Category != nil && !r.Category.IsValid() {
		return errors.New("category must be one of: ac, non_ac, sleeper, express")
	}
	if r.TotalSeats != nil && *r.TotalSeats < 1 {
		return errors.New("total_seats must be at least 1")
	}
	if r.BaseFarePerSeat != nil && *r.BaseFarePerSeat <= 0 {
		return errors.New("base_fare_per_seat must be positive")
	}
	return nil
}
