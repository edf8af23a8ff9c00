package swap

import (
	"fmt"
	"math"
	"sort"

	"github.com/meenmo/parcurve/curve"
)

// Bootstrapper calibrates zero-coupon curve pillars from par swap quotes.
//
// Quotes are processed in ascending maturity order so that every coupon of a
// quote earlier than its own maturity discounts off already-solved pillars
// (or the interpolated curve between them).
type Bootstrapper struct {
	quotes []Quote
	tenor  float64

	// Progress, when non-nil, is invoked once per newly solved pillar with
	// the quote that produced it and the resulting zero rate.
	Progress func(q Quote, zeroRate float64)
}

// NewBootstrapper validates the quote set and returns a bootstrapper with
// fixed-leg payments every tenor years. The input slice is copied and sorted
// by maturity; the caller's slice is never modified.
func NewBootstrapper(quotes []Quote, tenor float64) (*Bootstrapper, error) {
	if tenor <= 0 {
		return nil, fmt.Errorf("NewBootstrapper: tenor %g: %w", tenor, ErrInvalidTenor)
	}
	for i, q := range quotes {
		if q.Maturity <= 0 {
			return nil, fmt.Errorf("NewBootstrapper: quote %d: maturity %g: %w", i, q.Maturity, curve.ErrInvalidMaturity)
		}
	}

	sorted := make([]Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Maturity < sorted[j].Maturity
	})

	return &Bootstrapper{quotes: sorted, tenor: tenor}, nil
}

// Quotes returns the quote set in calibration (ascending maturity) order.
func (b *Bootstrapper) Quotes() []Quote {
	out := make([]Quote, len(b.quotes))
	copy(out, b.quotes)
	return out
}

// Tenor returns the fixed-leg payment interval in years.
func (b *Bootstrapper) Tenor() float64 {
	return b.tenor
}

// Calibrate bootstraps one pillar per quote onto a copy of seed and returns
// the extended curve. The seed itself is never modified. Quotes whose
// maturity already has a pillar on the seed are skipped, so re-calibrating
// an already calibrated curve is a no-op.
//
// Each step prices the fixed leg of the par swap maturing at the quote:
// coupons before maturity discount off the curve built so far, and the final
// discount factor is solved from the par condition
//
//	1 - DF(T) = S * sum(tau_i * DF(t_i))
//
// then stored as the continuously-compounded zero rate -ln(DF)/T.
func (b *Bootstrapper) Calibrate(seed *curve.Curve) (*curve.Curve, error) {
	if seed == nil {
		return nil, ErrNilCurve
	}

	c := seed.Clone()
	for _, q := range b.quotes {
		if c.Contains(q.Maturity) {
			continue
		}

		full, finalTau := fixedLegPeriods(q.Maturity, b.tenor)

		couponPV := 0.0
		for i := 1; i <= full; i++ {
			t := float64(i) * b.tenor
			couponPV += q.Rate * b.tenor * c.DiscountFactor(t)
		}

		df := (1.0 - couponPV) / (1.0 + finalTau*q.Rate)
		if df <= 0 {
			return nil, fmt.Errorf("Calibrate: maturity %g, rate %g: %w", q.Maturity, q.Rate, ErrNonPositiveDiscountFactor)
		}

		zero := -math.Log(df) / q.Maturity
		if err := c.AddNode(q.Maturity, zero); err != nil {
			return nil, fmt.Errorf("Calibrate: %w", err)
		}
		if b.Progress != nil {
			b.Progress(q, zero)
		}
	}
	return c, nil
}
