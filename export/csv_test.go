package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meenmo/parcurve/curve"
	"github.com/meenmo/parcurve/export"
	"github.com/meenmo/parcurve/swap"
)

func TestWriteQuotes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := export.WriteQuotes(&buf, []swap.Quote{
		{Maturity: 0.5, Rate: 0.010},
		{Maturity: 1.0, Rate: 0.015},
	})
	if err != nil {
		t.Fatalf("WriteQuotes error: %v", err)
	}

	want := "Maturity,SwapRate\n0.50000000,0.01000000\n1.00000000,0.01500000\n"
	if got := buf.String(); got != want {
		t.Fatalf("csv mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriteCurve(t *testing.T) {
	t.Parallel()

	c := curve.New()
	if err := c.AddNode(0.5, 0.01); err != nil {
		t.Fatalf("AddNode error: %v", err)
	}
	if err := c.AddNode(2.0, 0.019); err != nil {
		t.Fatalf("AddNode error: %v", err)
	}

	var buf bytes.Buffer
	if err := export.WriteCurve(&buf, c); err != nil {
		t.Fatalf("WriteCurve error: %v", err)
	}

	want := "Time,ZeroRate\n0.50000000,0.01000000\n2.00000000,0.01900000\n"
	if got := buf.String(); got != want {
		t.Fatalf("csv mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriteCurve_NilCurve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.WriteCurve(&buf, nil); !errors.Is(err, swap.ErrNilCurve) {
		t.Fatalf("expected ErrNilCurve, got %v", err)
	}
}

func TestWriteQuotesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swap_quotes.csv")
	err := export.WriteQuotesFile(path, []swap.Quote{{Maturity: 0.5, Rate: 0.010}})
	if err != nil {
		t.Fatalf("WriteQuotesFile error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.HasPrefix(string(raw), "Maturity,SwapRate\n") {
		t.Fatalf("unexpected file contents: %q", string(raw))
	}
}

func TestWriteCurveFile(t *testing.T) {
	t.Parallel()

	c := curve.New()
	if err := c.AddNode(1.0, 0.015); err != nil {
		t.Fatalf("AddNode error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "zero_curve.csv")
	if err := export.WriteCurveFile(path, c); err != nil {
		t.Fatalf("WriteCurveFile error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	want := "Time,ZeroRate\n1.00000000,0.01500000\n"
	if string(raw) != want {
		t.Fatalf("csv mismatch:\ngot  %q\nwant %q", string(raw), want)
	}
}
