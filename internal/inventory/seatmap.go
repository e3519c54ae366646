package inventory

import (
	"sync"

	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// SeatMap tracks the booked/available state of a trip's numbered seat slots.
// Slots are numbered 1..totalSeats. Reserve and Release are the only legal
// mutators; both hold the map's lock, so a reservation is atomic and
// all-or-nothing with respect to concurrent callers.
type SeatMap struct {
	mu     sync.Mutex
	total  int
	booked []bool // index 0 unused
}

// NewSeatMap creates a seat map with the given capacity
func NewSeatMap(totalSeats int) *SeatMap {
	return &SeatMap{
		total:  totalSeats,
		booked: make([]bool, totalSeats+1),
	}
}

// TotalSeats returns the seat capacity
func (m *SeatMap) TotalSeats() int {
	return m.total
}

// IsAvailable reports whether the seat can be reserved. Out-of-range seat
// numbers are simply unavailable.
func (m *SeatMap) IsAvailable(seat int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seat < 1 || seat > m.total {
		return false
	}
	return !m.booked[seat]
}

// Reserve marks every seat in the set as booked. The whole set is validated
// first: an out-of-range or duplicated seat fails with InvalidSeatError, a
// seat already booked fails with SeatUnavailableError, and in either case
// nothing is reserved.
func (m *SeatMap) Reserve(seats []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[int]bool, len(seats))
	for _, seat := range seats {
		if seat < 1 || seat > m.total || seen[seat] {
			return &models.InvalidSeatError{Seat: seat}
		}
		if m.booked[seat] {
			return &models.SeatUnavailableError{Seat: seat}
		}
		seen[seat] = true
	}

	for _, seat := range seats {
		m.booked[seat] = true
	}
	return nil
}

// Release marks the seats available again. Out-of-range seat numbers and
// already-available seats are silently ignored, so releasing is idempotent.
func (m *SeatMap) Release(seats []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, seat := range seats {
		if seat >= 1 && seat <= m.total {
			m.booked[seat] = false
		}
	}
}

// AvailableCount returns how many seats can still be reserved
func (m *SeatMap) AvailableCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for seat := 1; seat <= m.total; seat++ {
		if !m.booked[seat] {
			count++
		}
	}
	return count
}

// BookedSeats returns the booked seat numbers in ascending order
func (m *SeatMap) BookedSeats() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	seats := make([]int, 0)
	for seat := 1; seat <= m.total; seat++ {
		if m.booked[seat] {
			seats = append(seats, seat)
		}
	}
	return seats
}
