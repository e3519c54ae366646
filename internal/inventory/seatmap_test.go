package inventory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swifttransit/bus-booking-backend/internal/models"
)

func TestSeatMap_ReserveAndRelease(t *testing.T) {
	sm := NewSeatMap(10)
	assert.Equal(t, 10, sm.AvailableCount())

	require.NoError(t, sm.Reserve([]int{1, 5, 10}))
	assert.Equal(t, 7, sm.AvailableCount())
	assert.False(t, sm.IsAvailable(5))
	assert.True(t, sm.IsAvailable(2))
	assert.Equal(t, []int{1, 5, 10}, sm.BookedSeats())

	sm.Release([]int{5})
	assert.True(t, sm.IsAvailable(5))
	assert.Equal(t, 8, sm.AvailableCount())
}

func TestSeatMap_ReserveOutOfRange(t *testing.T) {
	sm := NewSeatMap(5)

	err := sm.Reserve([]int{1, 6})
	var invalid *models.InvalidSeatError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 6, invalid.Seat)

	// All-or-nothing: seat 1 was not reserved
	assert.True(t, sm.IsAvailable(1))
	assert.Equal(t, 5, sm.AvailableCount())

	err = sm.Reserve([]int{0})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Seat)
}

func TestSeatMap_ReserveDuplicate(t *testing.T) {
	sm := NewSeatMap(5)

	err := sm.Reserve([]int{3, 3})
	var invalid *models.InvalidSeatError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Seat)

	// Both slots untouched
	assert.True(t, sm.IsAvailable(3))
	assert.Equal(t, 5, sm.AvailableCount())
}

func TestSeatMap_ReserveAlreadyBooked(t *testing.T) {
	sm := NewSeatMap(5)
	require.NoError(t, sm.Reserve([]int{2}))

	err := sm.Reserve([]int{1, 2})
	var unavailable *models.SeatUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 2, unavailable.Seat)

	// Seat map unchanged by the failed attempt
	assert.True(t, sm.IsAvailable(1))
	assert.Equal(t, []int{2}, sm.BookedSeats())
}

func TestSeatMap_IsAvailableOutOfRange(t *testing.T) {
	sm := NewSeatMap(5)
	assert.False(t, sm.IsAvailable(0))
	assert.False(t, sm.IsAvailable(6))
	assert.False(t, sm.IsAvailable(-1))
}

func TestSeatMap_ReleaseIdempotent(t *testing.T) {
	sm := NewSeatMap(5)
	require.NoError(t, sm.Reserve([]int{4}))

	sm.Release([]int{4})
	sm.Release([]int{4})

	// Out-of-range releases are silently ignored
	sm.Release([]int{0, 99})

	assert.Equal(t, 5, sm.AvailableCount())
}

func TestSeatMap_ConcurrentReserve(t *testing.T) {
	sm := NewSeatMap(1)

	const attempts = 50
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sm.Reserve([]int{1}); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent reservation must win")
	assert.Equal(t, 0, sm.AvailableCount())
}
