package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/meenmo/parcurve/curve"
	"github.com/meenmo/parcurve/swap"
)

// formatLevel renders year fractions and rates with fixed 8-decimal
// precision.
func formatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

// WriteQuotes writes par swap quotes as CSV under a Maturity,SwapRate header.
func WriteQuotes(w io.Writer, quotes []swap.Quote) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Maturity", "SwapRate"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, q := range quotes {
		if err := cw.Write([]string{formatLevel(q.Maturity), formatLevel(q.Rate)}); err != nil {
			return fmt.Errorf("write quote: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCurve writes curve pillars as CSV under a Time,ZeroRate header.
func WriteCurve(w io.Writer, c *curve.Curve) error {
	if c == nil {
		return swap.ErrNilCurve
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Time", "ZeroRate"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range c.Pillars() {
		if err := cw.Write([]string{formatLevel(p.Maturity), formatLevel(p.Rate)}); err != nil {
			return fmt.Errorf("write pillar: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteQuotesFile writes quotes to path, creating or truncating the file.
func WriteQuotesFile(path string, quotes []swap.Quote) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteQuotes(f, quotes); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// WriteCurveFile writes curve pillars to path, creating or truncating the
// file.
func WriteCurveFile(path string, c *curve.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCurve(f, c); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
