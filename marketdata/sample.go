package marketdata

import (
	"time"

	"github.com/meenmo/parcurve/swap"
)

// SampleDate is the value date of the bundled par quote set.
var SampleDate = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

// SampleParQuotes is a bundled semiannual par swap set for development and
// demos. Rates are decimals.
var SampleParQuotes = map[string][]swap.Quote{
	"2025-06-30": {
		{Maturity: 0.5, Rate: 0.010},
		{Maturity: 1.0, Rate: 0.015},
		{Maturity: 2.0, Rate: 0.019},
		{Maturity: 3.0, Rate: 0.024},
		{Maturity: 5.0, Rate: 0.0315},
		{Maturity: 6.0, Rate: 0.040},
	},
}

// DefaultQuoteFeed builds a map-backed feed over the bundled sample quotes.
func DefaultQuoteFeed() QuoteFeed {
	return &MapQuoteFeed{quotes: SampleParQuotes}
}
