package swap

import "math"

const (
	// DefaultTenor is the fixed-leg payment interval used by the standard
	// par swap convention (semi-annual).
	DefaultTenor = 0.5

	// gridTolerance absorbs floating-point noise when a maturity lands on
	// (or within a hair of) a payment-grid point.
	gridTolerance = 1e-9

	// annuityEpsilon is the threshold below which an annuity is treated as
	// degenerate and the fair rate is reported as zero.
	annuityEpsilon = 1e-8
)

// fixedLegPeriods splits a maturity into full payment periods of length
// tenor plus a final short stub. It returns the number of full periods and
// the accrual of the last payment.
//
// An on-grid maturity has no stub: the final payment accrues a whole tenor
// and full counts the periods before it. An off-grid maturity gets a short
// final period of length maturity - full*tenor. Maturities at or below the
// grid tolerance produce no payments at all.
func fixedLegPeriods(maturity, tenor float64) (full int, finalTau float64) {
	if maturity <= gridTolerance {
		return 0, 0
	}
	k := int(math.Floor(maturity/tenor + gridTolerance))
	stub := maturity - float64(k)*tenor
	if stub > gridTolerance {
		return k, stub
	}
	return k - 1, tenor
}
