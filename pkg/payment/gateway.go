package payment

import (
	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// Gateway defines the interface for charging a booking amount.
// Implementations report success or failure; the engine never retries and
// never inspects anything beyond the error.
type Gateway interface {
	// Charge attempts to take the given amount using the chosen method
	Charge(amount float64, method models.PaymentMethod) error

	// Name returns the name of the gateway implementation
	Name() string
}
