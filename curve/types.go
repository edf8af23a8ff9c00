package curve

import "errors"

var (
	// ErrInvalidMaturity is returned when a non-positive maturity is supplied.
	ErrInvalidMaturity = errors.New("non-positive maturity")
)

// Pillar is a single calibrated point on the curve.
type Pillar struct {
	Maturity float64 // year fraction
	Rate     float64 // continuously-compounded zero rate, decimal
}
