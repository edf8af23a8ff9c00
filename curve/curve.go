package curve

import (
	"fmt"
	"math"
	"sort"
)

// Curve stores zero-rate pillars in ascending maturity order and answers
// zero-rate and discount-factor queries for any maturity.
//
// Queries are total: an empty curve reports a zero rate of 0.0 everywhere,
// and maturities outside the pillar range extrapolate flat from the nearest
// boundary pillar.
type Curve struct {
	pillars []Pillar // ascending by maturity, unique keys
}

// New returns an empty curve.
func New() *Curve {
	return &Curve{}
}

// AddNode inserts a pillar at the given maturity, overwriting any existing
// pillar at the same maturity.
func (c *Curve) AddNode(maturity, rate float64) error {
	if maturity <= 0 {
		return fmt.Errorf("AddNode: maturity %v: %w", maturity, ErrInvalidMaturity)
	}
	i := c.search(maturity)
	if i < len(c.pillars) && c.pillars[i].Maturity == maturity {
		c.pillars[i].Rate = rate
		return nil
	}
	c.pillars = append(c.pillars, Pillar{})
	copy(c.pillars[i+1:], c.pillars[i:])
	c.pillars[i] = Pillar{Maturity: maturity, Rate: rate}
	return nil
}

// search returns the index of the first pillar with maturity >= t.
func (c *Curve) search(t float64) int {
	return sort.Search(len(c.pillars), func(i int) bool {
		return c.pillars[i].Maturity >= t
	})
}

// ZeroRate returns the continuously-compounded zero rate applicable at year
// fraction t.
//
// Lookup rules:
//   - empty curve: 0.0
//   - t exactly at a stored pillar: that pillar's rate, never interpolated
//   - t below the first pillar or above the last: the boundary pillar's rate
//   - otherwise: linear interpolation between the bracketing pillars
func (c *Curve) ZeroRate(t float64) float64 {
	if len(c.pillars) == 0 {
		return 0.0
	}
	i := c.search(t)
	if i == len(c.pillars) {
		return c.pillars[len(c.pillars)-1].Rate
	}
	if c.pillars[i].Maturity == t || i == 0 {
		return c.pillars[i].Rate
	}
	p1 := c.pillars[i-1]
	p2 := c.pillars[i]
	return p1.Rate + (p2.Rate-p1.Rate)*(t-p1.Maturity)/(p2.Maturity-p1.Maturity)
}

// DiscountFactor returns exp(-r*t) where r is the zero rate applicable at t.
func (c *Curve) DiscountFactor(t float64) float64 {
	return math.Exp(-c.ZeroRate(t) * t)
}

// MaxMaturity returns the largest stored maturity, or 0.0 for an empty curve.
func (c *Curve) MaxMaturity() float64 {
	if len(c.pillars) == 0 {
		return 0.0
	}
	return c.pillars[len(c.pillars)-1].Maturity
}

// Contains reports whether a pillar exists at exactly the given maturity.
func (c *Curve) Contains(maturity float64) bool {
	i := c.search(maturity)
	return i < len(c.pillars) && c.pillars[i].Maturity == maturity
}

// Len returns the number of pillars.
func (c *Curve) Len() int {
	return len(c.pillars)
}

// Pillars returns a copy of all pillars in ascending maturity order.
func (c *Curve) Pillars() []Pillar {
	out := make([]Pillar, len(c.pillars))
	copy(out, c.pillars)
	return out
}

// Clone returns an independent copy of the curve.
func (c *Curve) Clone() *Curve {
	return &Curve{pillars: c.Pillars()}
}
