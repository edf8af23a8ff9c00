package swap

import (
	"fmt"
	"reflect"
)

func isNilCurve(c DiscountCurve) bool {
	if c == nil {
		return true
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// Pricer values plain-vanilla fixed-vs-float swaps on a discount curve.
//
// The floating leg is assumed to reprice to par, so its value collapses to
// 1 - DF(T) and no projection curve is needed.
type Pricer struct {
	tenor float64
}

// NewPricer returns a pricer whose fixed legs pay every tenor years.
func NewPricer(tenor float64) (*Pricer, error) {
	if tenor <= 0 {
		return nil, fmt.Errorf("NewPricer: tenor %g: %w", tenor, ErrInvalidTenor)
	}
	return &Pricer{tenor: tenor}, nil
}

// Annuity returns the present value of the fixed leg's accrual-weighted
// payments, sum(tau_i * DF(t_i)), for a swap maturing at maturity.
// Maturities at or below zero have no payments and an annuity of zero.
func (p *Pricer) Annuity(c DiscountCurve, maturity float64) (float64, error) {
	if isNilCurve(c) {
		return 0, ErrNilCurve
	}

	full, finalTau := fixedLegPeriods(maturity, p.tenor)
	annuity := 0.0
	for i := 1; i <= full; i++ {
		t := float64(i) * p.tenor
		annuity += p.tenor * c.DiscountFactor(t)
	}
	annuity += finalTau * c.DiscountFactor(maturity)
	return annuity, nil
}

// FairRate returns the fixed rate at which a swap maturing at maturity has
// zero value: (1 - DF(T)) / annuity. A degenerate annuity (maturity so short
// that no payment accrues) yields a fair rate of zero rather than an error.
func (p *Pricer) FairRate(c DiscountCurve, maturity float64) (float64, error) {
	if isNilCurve(c) {
		return 0, ErrNilCurve
	}

	annuity, err := p.Annuity(c, maturity)
	if err != nil {
		return 0, err
	}
	if annuity < annuityEpsilon {
		return 0.0, nil
	}
	return (1.0 - c.DiscountFactor(maturity)) / annuity, nil
}

// PriceSwap returns the value per unit notional of receiving float and
// paying fixedRate until maturity: (1 - DF(T)) - fixedRate * annuity.
// Non-positive maturities price to zero.
func (p *Pricer) PriceSwap(c DiscountCurve, maturity, fixedRate float64) (float64, error) {
	if isNilCurve(c) {
		return 0, ErrNilCurve
	}
	if maturity <= 0 {
		return 0, nil
	}

	annuity, err := p.Annuity(c, maturity)
	if err != nil {
		return 0, err
	}
	floatLeg := 1.0 - c.DiscountFactor(maturity)
	return floatLeg - fixedRate*annuity, nil
}

// Tenor returns the fixed-leg payment interval in years.
func (p *Pricer) Tenor() float64 {
	return p.tenor
}
