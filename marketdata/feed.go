package marketdata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/meenmo/parcurve/swap"
)

// ErrNoQuotes is returned when a feed holds no par quotes for the requested
// value date.
var ErrNoQuotes = errors.New("no quotes for value date")

// QuoteFeed supplies the par swap quotes observed on a value date, sorted by
// ascending maturity.
type QuoteFeed interface {
	Quotes(ctx context.Context, valueDate time.Time) ([]swap.Quote, error)
}

// MapQuoteFeed is a static map-backed implementation for development/testing.
type MapQuoteFeed struct {
	quotes map[string][]swap.Quote
}

// NewMapQuoteFeed builds a feed over quote sets keyed by value date in
// YYYY-MM-DD form.
func NewMapQuoteFeed(quotes map[string][]swap.Quote) *MapQuoteFeed {
	return &MapQuoteFeed{quotes: quotes}
}

func (m *MapQuoteFeed) Quotes(_ context.Context, valueDate time.Time) ([]swap.Quote, error) {
	key := valueDate.Format("2006-01-02")
	qs, ok := m.quotes[key]
	if !ok || len(qs) == 0 {
		return nil, fmt.Errorf("marketdata: %s: %w", key, ErrNoQuotes)
	}
	out := make([]swap.Quote, len(qs))
	copy(out, qs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Maturity < out[j].Maturity
	})
	return out, nil
}
