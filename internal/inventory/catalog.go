package inventory

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// TripCatalog owns the trip collection and each trip's seat map. Trips are
// returned by value; all mutation goes through Create, Update and Delete so
// invariants hold regardless of the caller.
type TripCatalog struct {
	mu     sync.RWMutex
	trips  map[int]*models.Trip
	seats  map[int]*SeatMap
	order  []int // insertion order, for stable listings
	logger *logrus.Logger
}

// NewTripCatalog creates an empty trip catalog
func NewTripCatalog(logger *logrus.Logger) *TripCatalog {
	return &TripCatalog{
		trips:  make(map[int]*models.Trip),
		seats:  make(map[int]*SeatMap),
		logger: logger,
	}
}

// Create registers a new trip with a fresh seat map
func (c *TripCatalog) Create(req *models.CreateTripRequest) (models.Trip, error) {
	if err := req.Validate(); err != nil {
		return models.Trip{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.trips[req.ID]; exists {
		return models.Trip{}, models.ErrDuplicateTripID
	}

	now := time.Now()
	trip := &models.Trip{
		ID:              req.ID,
		Operator:        req.Operator,
		Category:        req.Category,
		Origin:          req.Origin,
		Destination:     req.Destination,
		DepartureTime:   req.DepartureTime,
		TotalSeats:      req.TotalSeats,
		BaseFarePerSeat: req.BaseFarePerSeat,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	c.trips[trip.ID] = trip
	c.seats[trip.ID] = NewSeatMap(trip.TotalSeats)
	c.order = append(c.order, trip.ID)

	c.logger.WithFields(logrus.Fields{
		"trip_id":     trip.ID,
		"operator":    trip.Operator,
		"total_seats": trip.TotalSeats,
	}).Info("Trip registered")

	return *trip, nil
}

// Get returns the trip with the given id
func (c *TripCatalog) Get(id int) (models.Trip, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	trip, ok := c.trips[id]
	if !ok {
		return models.Trip{}, models.ErrTripNotFound
	}
	return *trip, nil
}

// SeatMapFor returns the seat map owned by the trip with the given id
func (c *TripCatalog) SeatMapFor(id int) (*SeatMap, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sm, ok := c.seats[id]
	if !ok {
		return nil, models.ErrTripNotFound
	}
	return sm, nil
}

// Summary returns the trip together with its current seat availability
func (c *TripCatalog) Summary(id int) (models.TripSummary, error) {
	c.mu.RLock()
	trip, ok := c.trips[id]
	sm := c.seats[id]
	c.mu.RUnlock()
	if !ok {
		return models.TripSummary{}, models.ErrTripNotFound
	}
	return models.TripSummary{
		Trip:           *trip,
		AvailableSeats: sm.AvailableCount(),
		BookedSeats:    sm.BookedSeats(),
	}, nil
}

// List returns all trips in registration order
func (c *TripCatalog) List() []models.Trip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	trips := make([]models.Trip, 0, len(c.order))
	for _, id := range c.order {
		trips = append(trips, *c.trips[id])
	}
	return trips
}

// SearchByRoute returns trips whose origin and destination match,
// case-insensitively. Empty arguments match everything.
func (c *TripCatalog) SearchByRoute(origin, destination string) []models.Trip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	matches := make([]models.Trip, 0)
	for _, id := range c.order {
		trip := c.trips[id]
		if origin != "" && !strings.EqualFold(trip.Origin, origin) {
			continue
		}
		if destination != "" && !strings.EqualFold(trip.Destination, destination) {
			continue
		}
		matches = append(matches, *trip)
	}
	return matches
}

// SearchByCategory returns trips of the given service class
func (c *TripCatalog) SearchByCategory(category models.TripCategory) []models.Trip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	matches := make([]models.Trip, 0)
	for _, id := range c.order {
		if c.trips[id].Category == category {
			matches = append(matches, *c.trips[id])
		}
	}
	return matches
}

// Update applies the non-nil fields of the request to the trip. Seat capacity
// can only change while no seat is booked; the seat map is rebuilt at the new
// size.
func (c *TripCatalog) Update(id int, req *models.UpdateTripRequest) (models.Trip, error) {
	if err := req.Validate(); err != nil {
		return models.Trip{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	trip, ok := c.trips[id]
	if !ok {
		return models.Trip{}, models.ErrTripNotFound
	}

	if req.TotalSeats != nil && *req.TotalSeats != trip.TotalSeats {
		if len(c.seats[id].BookedSeats()) > 0 {
			return models.Trip{}, models.ErrTripHasActiveBookings
		}
		trip.TotalSeats = *req.TotalSeats
		c.seats[id] = NewSeatMap(trip.TotalSeats)
	}
	if req.Operator != nil {
		trip.Operator = *req.Operator
	}
	if req.Category != nil {
		trip.Category = *req.Category
	}
	if req.Origin != nil {
		trip.Origin = *req.Origin
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.DepartureTime != nil {
		trip.DepartureTime = *req.DepartureTime
	}
	if req.BaseFarePerSeat != nil {
		trip.BaseFarePerSeat = *req.BaseFarePerSeat
	}
	trip.UpdatedAt = time.Now()

	c.logger.WithField("trip_id", id).Info("Trip updated")

	return *trip, nil
}

// Delete removes the trip and its seat map. Callers are responsible for
// checking outstanding bookings first; the booking service refuses deletion
// while any confirmed booking references the trip.
func (c *TripCatalog) Delete(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.trips[id]; !ok {
		return models.ErrTripNotFound
	}

	delete(c.trips, id)
	delete(c.seats, id)
	for i, tripID := range c.order {
		if tripID == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	c.logger.WithField("trip_id", id).Info("Trip removed")

	return nil
}
