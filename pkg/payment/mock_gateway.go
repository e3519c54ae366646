package payment

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// MockGateway simulates a payment provider. In "approve" mode every charge
// succeeds; in "decline" mode every charge fails, which is useful for
// exercising the failure path without a real provider.
type MockGateway struct {
	mode   string
	logger *logrus.Logger
}

// NewMockGateway creates a mock gateway. Mode is "approve" or "decline";
// anything else is treated as "approve".
func NewMockGateway(mode string, logger *logrus.Logger) *MockGateway {
	return &MockGateway{mode: mode, logger: logger}
}

// Charge approves or declines the payment according to the gateway mode
func (g *MockGateway) Charge(amount float64, method models.PaymentMethod) error {
	if amount <= 0 {
		return fmt.Errorf("%w: non-positive amount %v", models.ErrPaymentFailed, amount)
	}
	if g.mode == "decline" {
		g.logger.WithFields(logrus.Fields{
			"amount": amount,
			"method": method,
		}).Warn("Mock gateway declined payment")
		return models.ErrPaymentFailed
	}

	g.logger.WithFields(logrus.Fields{
		"amount": amount,
		"method": method,
	}).Info("Mock gateway approved payment")
	return nil
}

// Name returns the gateway implementation name
func (g *MockGateway) Name() string {
	return "mock"
}
