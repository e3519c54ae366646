package booking

// Refund tiers by hours remaining before departure. Boundary values belong
// to the higher tier: exactly 24 hours still refunds 90%.
const (
	fullRefundWindowHours = 24
	halfRefundWindowHours = 12
	lateRefundWindowHours = 6
)

// PolicyTier describes one row of the cancellation policy for display
type PolicyTier struct {
	MinHours       int     `json:"min_hours"`
	MaxHours       *int    `json:"max_hours,omitempty"`
	RefundFraction float64 `json:"refund_fraction"`
}

// RefundFraction maps hours-before-departure to the refundable fraction of
// the final fare.
func RefundFraction(hoursBeforeDeparture int) float64 {
	switch {
	case hoursBeforeDeparture >= fullRefundWindowHours:
		return 0.90
	case hoursBeforeDeparture >= halfRefundWindowHours:
		return 0.50
	case hoursBeforeDeparture >= lateRefundWindowHours:
		return 0.25
	default:
		return 0
	}
}

// ComputeRefund returns the amount returned to the passenger when a booking
// is cancelled the given number of hours before departure.
func ComputeRefund(finalAmount float64, hoursBeforeDeparture int) float64 {
	return finalAmount * RefundFraction(hoursBeforeDeparture)
}

// PolicyTiers returns the cancellation policy as structured rows, ordered
// from the most generous tier down.
func PolicyTiers() []PolicyTier {
	half := halfRefundWindowHours
	full := fullRefundWindowHours
	late := lateRefundWindowHours
	return []PolicyTier{
		{MinHours: fullRefundWindowHours, RefundFraction: 0.90},
		{MinHours: halfRefundWindowHours, MaxHours: &full, RefundFraction: 0.50},
		{MinHours: lateRefundWindowHours, MaxHours: &half, RefundFraction: 0.25},
		{MinHours: 0, MaxHours: &late, RefundFraction: 0},
	}
}
