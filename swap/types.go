package swap

import "errors"

var (
	// ErrNilCurve is returned when a required curve argument is nil.
	ErrNilCurve = errors.New("nil curve")

	// ErrInvalidTenor is returned when a non-positive payment tenor is supplied.
	ErrInvalidTenor = errors.New("non-positive tenor")

	// ErrNonPositiveDiscountFactor is returned when a bootstrap step solves to
	// a discount factor <= 0, indicating an arbitrage-inconsistent quote set.
	ErrNonPositiveDiscountFactor = errors.New("non-positive discount factor")
)

// Quote is an observed par swap rate for a given maturity.
type Quote struct {
	Maturity float64 // year fraction, > 0
	Rate     float64 // decimal par rate (0.019 == 1.9%)
}

// DiscountCurve supplies discount factors for valuation. *curve.Curve
// satisfies it.
type DiscountCurve interface {
	DiscountFactor(t float64) float64
}
