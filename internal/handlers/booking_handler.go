package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swifttransit/bus-booking-backend/internal/booking"
	"github.com/swifttransit/bus-booking-backend/internal/models"
	"github.com/swifttransit/bus-booking-backend/pkg/validator"
)

// BookingHandler handles the booking lifecycle endpoints
type BookingHandler struct {
	service  *booking.Service
	contacts *validator.ContactValidator
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service *booking.Service, contacts *validator.ContactValidator) *BookingHandler {
	return &BookingHandler{service: service, contacts: contacts}
}

// CreateBooking books seats on a trip. Payment is taken and the seats are
// reserved in one request, mirroring the pay-then-hold flow; on any failure
// nothing is persisted.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contacts.Validate(req.Contact)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Contact = contact

	b, err := h.service.Book(&req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetBooking returns the receipt data for one booking
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	receipt, err := h.service.Receipt(id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// ListBookings returns all bookings, optionally filtered by trip_id
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var tripID *int
	if raw := c.Query("trip_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip_id"})
			return
		}
		tripID = &id
	}

	bookings := h.service.Bookings(tripID)
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// CancelBooking cancels a confirmed booking and reports the refund
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cancelled, refund, err := h.service.Cancel(id, req.HoursBeforeDeparture)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":       cancelled,
		"refund_amount": refund,
	})
}

// GetCancellationPolicy returns the refund tiers as structured data
func (h *BookingHandler) GetCancellationPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": booking.PolicyTiers()})
}
