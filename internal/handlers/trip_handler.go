package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swifttransit/bus-booking-backend/internal/booking"
	"github.com/swifttransit/bus-booking-backend/internal/inventory"
	"github.com/swifttransit/bus-booking-backend/internal/models"
	"github.com/swifttransit/bus-booking-backend/internal/services"
)

// TripHandler handles trip catalog operations
type TripHandler struct {
	catalog *inventory.TripCatalog
	service *booking.Service
	audit   *services.AuditService
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(catalog *inventory.TripCatalog, service *booking.Service, audit *services.AuditService) *TripHandler {
	return &TripHandler{
		catalog: catalog,
		service: service,
		audit:   audit,
	}
}

// CreateTrip registers a new trip
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.catalog.Create(&req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	h.audit.TripCreated(trip)

	c.JSON(http.StatusCreated, trip)
}

// ListTrips returns all trips, optionally filtered by route or category.
// Query parameters: origin, destination, category.
func (h *TripHandler) ListTrips(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	category := c.Query("category")

	var trips []models.Trip
	switch {
	case category != "":
		trips = h.catalog.SearchByCategory(models.TripCategory(category))
	case origin != "" || destination != "":
		trips = h.catalog.SearchByRoute(origin, destination)
	default:
		trips = h.catalog.List()
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips, "count": len(trips)})
}

// GetTrip returns one trip with its seat availability
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	summary, err := h.catalog.Summary(id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTripSeats returns the seat-level availability for a trip
func (h *TripHandler) GetTripSeats(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	summary, err := h.catalog.Summary(id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trip_id":         summary.ID,
		"total_seats":     summary.TotalSeats,
		"available_seats": summary.AvailableSeats,
		"booked_seats":    summary.BookedSeats,
	})
}

// UpdateTrip applies a partial update to a trip
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	var req models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.catalog.Update(id, &req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteTrip removes a trip; refused while it has active bookings
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	if err := h.service.DeleteTrip(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	h.audit.TripDeleted(id)

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}
