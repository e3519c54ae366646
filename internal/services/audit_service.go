package services

import (
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-booking-backend/internal/database"
	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// AuditService records booking lifecycle events to the audit trail. Audit
// failures are logged and swallowed: the trail must never fail a business
// operation.
type AuditService struct {
	repo   *database.AuditEventRepository
	logger *logrus.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo *database.AuditEventRepository, logger *logrus.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// BookingConfirmed records a confirmed booking
func (s *AuditService) BookingConfirmed(b models.Booking) {
	s.logEvent("booking_confirmed", "booking", strconv.Itoa(b.ID), map[string]interface{}{
		"trip_id":      b.TripID,
		"reference":    b.Reference,
		"seats":        b.Seats,
		"final_amount": b.FinalAmount,
		"discount":     b.Discount,
	})
}

// BookingCancelled records a cancellation and the refund granted
func (s *AuditService) BookingCancelled(b models.Booking, refund float64) {
	s.logEvent("booking_cancelled", "booking", strconv.Itoa(b.ID), map[string]interface{}{
		"trip_id":   b.TripID,
		"reference": b.Reference,
		"seats":     b.Seats,
		"refund":    refund,
	})
}

// PaymentFailed records a declined charge; no booking exists at this point
func (s *AuditService) PaymentFailed(tripID int, amount float64, method models.PaymentMethod) {
	s.logEvent("payment_failed", "trip", strconv.Itoa(tripID), map[string]interface{}{
		"amount": amount,
		"method": method,
	})
}

// TripCreated records the registration of a trip
func (s *AuditService) TripCreated(trip models.Trip) {
	s.logEvent("trip_created", "trip", strconv.Itoa(trip.ID), map[string]interface{}{
		"operator":    trip.Operator,
		"origin":      trip.Origin,
		"destination": trip.Destination,
		"total_seats": trip.TotalSeats,
	})
}

// TripDeleted records the removal of a trip
func (s *AuditService) TripDeleted(tripID int) {
	s.logEvent("trip_deleted", "trip", strconv.Itoa(tripID), nil)
}

func (s *AuditService) logEvent(action, entityType, entityID string, details map[string]interface{}) {
	payload := []byte("{}")
	if details != nil {
		var err error
		payload, err = json.Marshal(details)
		if err != nil {
			s.logger.WithError(err).WithField("action", action).Warn("Failed to encode audit details")
			payload = []byte("{}")
		}
	}

	event := &models.AuditEvent{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    string(payload),
	}

	if err := s.repo.Insert(event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"action":    action,
			"entity_id": entityID,
		}).Warn("Failed to record audit event")
	}
}
