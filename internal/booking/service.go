package booking

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-booking-backend/internal/inventory"
	"github.com/swifttransit/bus-booking-backend/internal/models"
	"github.com/swifttransit/bus-booking-backend/pkg/payment"
)

// AuditRecorder receives booking lifecycle events. Implementations handle
// their own failures; recording must never fail the business operation.
type AuditRecorder interface {
	BookingConfirmed(b models.Booking)
	BookingCancelled(b models.Booking, refund float64)
	PaymentFailed(tripID int, amount float64, method models.PaymentMethod)
}

// Service handles the search → pay → reserve → confirm booking flow and the
// cancellation flow. A booking is only persisted after both the charge and
// the seat reservation have succeeded, so a partial failure never leaves the
// ledger and the seat map disagreeing.
type Service struct {
	catalog *inventory.TripCatalog
	ledger  *Ledger
	gateway payment.Gateway
	audit   AuditRecorder
	logger  *logrus.Logger
}

// NewService creates a new booking service
func NewService(
	catalog *inventory.TripCatalog,
	ledger *Ledger,
	gateway payment.Gateway,
	audit AuditRecorder,
	logger *logrus.Logger,
) *Service {
	return &Service{
		catalog: catalog,
		ledger:  ledger,
		gateway: gateway,
		audit:   audit,
		logger:  logger,
	}
}

// Ledger exposes the booking collection for read-side callers
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// Book validates the seat selection, computes the fare, takes payment and
// reserves the seats. The reservation itself is atomic; the availability
// pre-check before charging only shrinks the race window, so a reservation
// lost to a concurrent booking after payment still fails the whole attempt.
func (s *Service) Book(req *models.CreateBookingRequest) (models.Booking, error) {
	if err := req.Validate(); err != nil {
		return models.Booking{}, err
	}

	trip, err := s.catalog.Get(req.TripID)
	if err != nil {
		return models.Booking{}, err
	}
	seatMap, err := s.catalog.SeatMapFor(req.TripID)
	if err != nil {
		return models.Booking{}, err
	}

	seen := make(map[int]bool, len(req.Seats))
	for _, seat := range req.Seats {
		if seat < 1 || seat > seatMap.TotalSeats() || seen[seat] {
			return models.Booking{}, &models.InvalidSeatError{Seat: seat}
		}
		if !seatMap.IsAvailable(seat) {
			return models.Booking{}, &models.SeatUnavailableError{Seat: seat}
		}
		seen[seat] = true
	}

	discount, finalAmount, err := ComputeFare(trip.BaseFarePerSeat, len(req.Seats), req.Age)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		Reference:     uuid.New().String(),
		PassengerName: req.PassengerName,
		Gender:        req.Gender,
		Age:           req.Age,
		Contact:       req.Contact,
		TripID:        trip.ID,
		JourneyDate:   req.JourneyDate,
		PaymentMethod: req.PaymentMethod,
		Discount:      discount,
		FinalAmount:   finalAmount,
		Status:        models.BookingStatusPending,
	}

	if err := s.gateway.Charge(finalAmount, req.PaymentMethod); err != nil {
		s.audit.PaymentFailed(trip.ID, finalAmount, req.PaymentMethod)
		s.logger.WithFields(logrus.Fields{
			"trip_id": trip.ID,
			"amount":  finalAmount,
		}).Warn("Payment declined, booking discarded")
		return models.Booking{}, err
	}

	if err := seatMap.Reserve(req.Seats); err != nil {
		// Lost the race after payment. Refunding the charge is outside the
		// engine's boundary; the attempt fails and nothing is persisted.
		s.logger.WithFields(logrus.Fields{
			"trip_id": trip.ID,
			"seats":   req.Seats,
		}).Warn("Seat reservation failed after payment")
		return models.Booking{}, err
	}

	seats := append([]int(nil), req.Seats...)
	sort.Ints(seats)
	booking.Seats = seats
	booking.Status = models.BookingStatusConfirmed
	booking.BookedAt = time.Now()

	s.ledger.Add(&booking)
	s.audit.BookingConfirmed(booking)

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"trip_id":    trip.ID,
		"seats":      booking.Seats,
		"amount":     booking.FinalAmount,
	}).Info("Booking confirmed")

	return booking, nil
}

// Cancel transitions the booking to cancelled, computes the refund from the
// hours remaining before departure and releases the seats. Cancelling an
// already-cancelled booking returns ErrAlreadyCancelled and releases nothing.
func (s *Service) Cancel(id, hoursBeforeDeparture int) (models.Booking, float64, error) {
	current, err := s.ledger.FindByID(id)
	if err != nil {
		return models.Booking{}, 0, err
	}

	refund := ComputeRefund(current.FinalAmount, hoursBeforeDeparture)

	cancelled, err := s.ledger.Cancel(id, refund)
	if err != nil {
		return models.Booking{}, 0, err
	}

	// The trip still exists at this point: deletion is blocked while the
	// booking was active, and seats of cancelled bookings are long released.
	if seatMap, err := s.catalog.SeatMapFor(cancelled.TripID); err == nil {
		seatMap.Release(cancelled.Seats)
	}

	s.audit.BookingCancelled(cancelled, refund)

	s.logger.WithFields(logrus.Fields{
		"booking_id": cancelled.ID,
		"trip_id":    cancelled.TripID,
		"refund":     refund,
	}).Info("Booking cancelled")

	return cancelled, refund, nil
}

// FindBooking returns the booking with the given id
func (s *Service) FindBooking(id int) (models.Booking, error) {
	return s.ledger.FindByID(id)
}

// Bookings returns all bookings, optionally filtered to one trip
func (s *Service) Bookings(tripID *int) []models.Booking {
	if tripID != nil {
		return s.ledger.AllForTrip(*tripID)
	}
	return s.ledger.All()
}

// Receipt returns the booking together with its trip details and the
// pre-discount subtotal. A booking left behind by a deleted trip keeps its
// own data; the trip section is simply zero.
func (s *Service) Receipt(id int) (models.BookingReceipt, error) {
	b, err := s.ledger.FindByID(id)
	if err != nil {
		return models.BookingReceipt{}, err
	}

	receipt := models.BookingReceipt{
		Booking:  b,
		Subtotal: b.FinalAmount + b.Discount,
	}
	if trip, err := s.catalog.Get(b.TripID); err == nil {
		receipt.Trip = trip
	}
	return receipt, nil
}

// DeleteTrip removes a trip from the catalog, refusing while any confirmed
// booking still references it.
func (s *Service) DeleteTrip(id int) error {
	if s.ledger.HasActiveForTrip(id) {
		return models.ErrTripHasActiveBookings
	}
	return s.catalog.Delete(id)
}
