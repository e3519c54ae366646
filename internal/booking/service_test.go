package booking

import (
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swifttransit/bus-booking-backend/internal/inventory"
	"github.com/swifttransit/bus-booking-backend/internal/models"
	"github.com/swifttransit/bus-booking-backend/pkg/payment"
)

type recordedEvents struct {
	confirmed []models.Booking
	cancelled []models.Booking
	failed    int
}

func (r *recordedEvents) BookingConfirmed(b models.Booking) { r.confirmed = append(r.confirmed, b) }
func (r *recordedEvents) BookingCancelled(b models.Booking, refund float64) {
	r.cancelled = append(r.cancelled, b)
}
func (r *recordedEvents) PaymentFailed(tripID int, amount float64, method models.PaymentMethod) {
	r.failed++
}

func setupService(t *testing.T, gatewayMode string) (*Service, *inventory.TripCatalog, *recordedEvents) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	catalog := inventory.NewTripCatalog(logger)
	_, err := catalog.Create(&models.CreateTripRequest{
		ID:              1,
		Operator:        "Hillside Express",
		Category:        models.TripCategoryAC,
		Origin:          "Colombo",
		Destination:     "Kandy",
		DepartureTime:   time.Now().Add(48 * time.Hour),
		TotalSeats:      10,
		BaseFarePerSeat: 100,
	})
	require.NoError(t, err)

	audit := &recordedEvents{}
	gateway := payment.NewMockGateway(gatewayMode, logger)
	service := NewService(catalog, NewLedger(), gateway, audit, logger)
	return service, catalog, audit
}

func bookingRequest(seats ...int) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		TripID:        1,
		Seats:         seats,
		PassengerName: "Nimal Perera",
		Gender:        "male",
		Age:           30,
		Contact:       "0771234567",
		JourneyDate:   "2026-09-15",
		PaymentMethod: models.PaymentMethodCard,
	}
}

// seatAgreement asserts the core invariant: the seat map's booked set equals
// the union of seats held by confirmed bookings on the trip.
func seatAgreement(t *testing.T, service *Service, catalog *inventory.TripCatalog, tripID int) {
	t.Helper()

	sm, err := catalog.SeatMapFor(tripID)
	require.NoError(t, err)

	union := make([]int, 0)
	for _, b := range service.Ledger().AllForTrip(tripID) {
		if b.IsActive() {
			union = append(union, b.Seats...)
		}
	}
	sort.Ints(union)

	assert.Equal(t, union, sm.BookedSeats())
	assert.Equal(t, len(union), service.Ledger().ActiveSeatCount(tripID))
}

func TestService_BookSuccess(t *testing.T) {
	service, catalog, audit := setupService(t, "approve")

	b, err := service.Book(bookingRequest(5, 2))
	require.NoError(t, err)

	assert.Equal(t, 1001, b.ID)
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, []int{2, 5}, b.Seats, "stored seats are sorted")
	assert.Equal(t, 0.0, b.Discount)
	assert.Equal(t, 200.0, b.FinalAmount)

	require.Len(t, audit.confirmed, 1)
	seatAgreement(t, service, catalog, 1)
}

func TestService_BookChildDiscount(t *testing.T) {
	service, _, _ := setupService(t, "approve")

	req := bookingRequest(1, 2)
	req.Age = 10
	b, err := service.Book(req)
	require.NoError(t, err)
	assert.Equal(t, 50.0, b.Discount)
	assert.Equal(t, 150.0, b.FinalAmount)
}

func TestService_BookUnknownTrip(t *testing.T) {
	service, _, _ := setupService(t, "approve")

	req := bookingRequest(1)
	req.TripID = 42
	_, err := service.Book(req)
	assert.ErrorIs(t, err, models.ErrTripNotFound)
}

func TestService_BookDuplicateSeatRejected(t *testing.T) {
	service, catalog, _ := setupService(t, "approve")

	_, err := service.Book(bookingRequest(3, 3))
	var invalid *models.InvalidSeatError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Seat)

	sm, err := catalog.SeatMapFor(1)
	require.NoError(t, err)
	assert.Equal(t, 10, sm.AvailableCount())
	assert.Empty(t, service.Ledger().All())
}

func TestService_BookSeatAlreadyTaken(t *testing.T) {
	service, catalog, _ := setupService(t, "approve")

	_, err := service.Book(bookingRequest(4))
	require.NoError(t, err)

	_, err = service.Book(bookingRequest(4, 5))
	var unavailable *models.SeatUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 4, unavailable.Seat)

	// The failed attempt reserved nothing
	sm, err := catalog.SeatMapFor(1)
	require.NoError(t, err)
	assert.True(t, sm.IsAvailable(5))
	seatAgreement(t, service, catalog, 1)
}

func TestService_BookPaymentDeclined(t *testing.T) {
	service, catalog, audit := setupService(t, "decline")

	_, err := service.Book(bookingRequest(1, 2))
	assert.ErrorIs(t, err, models.ErrPaymentFailed)

	// Nothing persisted, nothing reserved
	assert.Empty(t, service.Ledger().All())
	sm, err := catalog.SeatMapFor(1)
	require.NoError(t, err)
	assert.Equal(t, 10, sm.AvailableCount())
	assert.Equal(t, 1, audit.failed)
}

func TestService_CancelReleasesExactlyOwnSeats(t *testing.T) {
	service, catalog, audit := setupService(t, "approve")

	first, err := service.Book(bookingRequest(1, 2))
	require.NoError(t, err)
	second, err := service.Book(bookingRequest(3, 4))
	require.NoError(t, err)

	cancelled, refund, err := service.Cancel(first.ID, 24)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 180.0, refund) // 90% of 200

	sm, err := catalog.SeatMapFor(1)
	require.NoError(t, err)
	assert.True(t, sm.IsAvailable(1))
	assert.True(t, sm.IsAvailable(2))
	assert.False(t, sm.IsAvailable(3))
	assert.False(t, sm.IsAvailable(4))

	require.Len(t, audit.cancelled, 1)
	seatAgreement(t, service, catalog, 1)

	// Second booking untouched
	got, err := service.FindBooking(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
}

func TestService_CancelTwice(t *testing.T) {
	service, catalog, _ := setupService(t, "approve")

	b, err := service.Book(bookingRequest(1))
	require.NoError(t, err)

	_, _, err = service.Cancel(b.ID, 5)
	require.NoError(t, err)

	// Rebook the released seat, then make sure the stale cancellation
	// cannot release it again.
	rebooked, err := service.Book(bookingRequest(1))
	require.NoError(t, err)

	_, _, err = service.Cancel(b.ID, 5)
	assert.ErrorIs(t, err, models.ErrAlreadyCancelled)

	sm, err := catalog.SeatMapFor(1)
	require.NoError(t, err)
	assert.False(t, sm.IsAvailable(1))

	got, err := service.FindBooking(rebooked.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
}

func TestService_CancelRefundTiers(t *testing.T) {
	service, _, _ := setupService(t, "approve")

	for hours, want := range map[int]float64{24: 180, 12: 100, 6: 50, 5: 0} {
		// Each round cancels, so the same two seats come back every time
		b, err := service.Book(bookingRequest(1, 2))
		require.NoError(t, err)
		_, refund, err := service.Cancel(b.ID, hours)
		require.NoError(t, err)
		assert.Equal(t, want, refund, "hours=%d", hours)
	}
}

func TestService_CancelUnknownBooking(t *testing.T) {
	service, _, _ := setupService(t, "approve")

	_, _, err := service.Cancel(9999, 24)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestService_Receipt(t *testing.T) {
	service, _, _ := setupService(t, "approve")

	req := bookingRequest(1, 2)
	req.Age = 65
	b, err := service.Book(req)
	require.NoError(t, err)

	receipt, err := service.Receipt(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, receipt.ID)
	assert.Equal(t, "Hillside Express", receipt.Trip.Operator)
	assert.Equal(t, 200.0, receipt.Subtotal)
	assert.Equal(t, 60.0, receipt.Discount)
	assert.Equal(t, 140.0, receipt.FinalAmount)
}

func TestService_DeleteTripBlockedByActiveBookings(t *testing.T) {
	service, catalog, _ := setupService(t, "approve")

	b, err := service.Book(bookingRequest(1))
	require.NoError(t, err)

	err = service.DeleteTrip(1)
	assert.ErrorIs(t, err, models.ErrTripHasActiveBookings)

	_, _, err = service.Cancel(b.ID, 24)
	require.NoError(t, err)

	require.NoError(t, service.DeleteTrip(1))
	_, err = catalog.Get(1)
	assert.ErrorIs(t, err, models.ErrTripNotFound)
}

func TestService_BookAndCancelStormKeepsAgreement(t *testing.T) {
	service, catalog, _ := setupService(t, "approve")

	var ids []int
	for seat := 1; seat <= 10; seat++ {
		b, err := service.Book(bookingRequest(seat))
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}
	seatAgreement(t, service, catalog, 1)

	for i, id := range ids {
		if i%2 == 0 {
			_, _, err := service.Cancel(id, 24)
			require.NoError(t, err)
		}
	}
	seatAgreement(t, service, catalog, 1)

	sm, err := catalog.SeatMapFor(1)
	require.NoError(t, err)
	assert.Equal(t, 5, sm.AvailableCount())
}
