package booking

import (
	"sync"
	"time"

	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// firstBookingID is one below the first id ever handed out; ids are
// pre-incremented, never reused, and survive cancellation.
const firstBookingID = 1000

// Ledger owns the booking collection. Bookings are stored by pointer
// internally and always returned by value so state transitions only happen
// through the ledger itself.
type Ledger struct {
	mu      sync.RWMutex
	byID    map[int]*models.Booking
	order   []int // confirmation order, for stable listings
	counter int
}

// NewLedger creates an empty booking ledger
func NewLedger() *Ledger {
	return &Ledger{
		byID:    make(map[int]*models.Booking),
		counter: firstBookingID,
	}
}

// Add assigns the next booking id, stores the booking and returns its id
func (l *Ledger) Add(b *models.Booking) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counter++
	b.ID = l.counter

	stored := *b
	stored.Seats = append([]int(nil), b.Seats...)
	l.byID[stored.ID] = &stored
	l.order = append(l.order, stored.ID)

	return stored.ID
}

// FindByID returns the booking with the given id
func (l *Ledger) FindByID(id int) (models.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.byID[id]
	if !ok {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

// All returns every booking in confirmation order
func (l *Ledger) All() []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bookings := make([]models.Booking, 0, len(l.order))
	for _, id := range l.order {
		bookings = append(bookings, copyBooking(l.byID[id]))
	}
	return bookings
}

// AllForTrip returns every booking referencing the trip
func (l *Ledger) AllForTrip(tripID int) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bookings := make([]models.Booking, 0)
	for _, id := range l.order {
		if l.byID[id].TripID == tripID {
			bookings = append(bookings, copyBooking(l.byID[id]))
		}
	}
	return bookings
}

// HasActiveForTrip reports whether any confirmed booking references the trip
func (l *Ledger) HasActiveForTrip(tripID int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.byID {
		if b.TripID == tripID && b.IsActive() {
			return true
		}
	}
	return false
}

// ActiveSeatCount returns the total number of seats held by confirmed
// bookings on the trip.
func (l *Ledger) ActiveSeatCount(tripID int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, b := range l.byID {
		if b.TripID == tripID && b.IsActive() {
			count += len(b.Seats)
		}
	}
	return count
}

// Cancel transitions the booking to cancelled and records the refund. The
// status check and the transition happen under one lock, so a second
// concurrent cancellation reliably gets ErrAlreadyCancelled.
func (l *Ledger) Cancel(id int, refund float64) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byID[id]
	if !ok {
		return models.Booking{}, models.ErrBookingNotFound
	}
	if b.Status == models.BookingStatusCancelled {
		return models.Booking{}, models.ErrAlreadyCancelled
	}

	now := time.Now()
	b.Status = models.BookingStatusCancelled
	b.RefundAmount = &refund
	b.CancelledAt = &now

	return copyBooking(b), nil
}

func copyBooking(b *models.Booking) models.Booking {
	out := *b
	out.Seats = append([]int(nil), b.Seats...)
	if b.RefundAmount != nil {
		refund := *b.RefundAmount
		out.RefundAmount = &refund
	}
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		out.CancelledAt = &at
	}
	return out
}
