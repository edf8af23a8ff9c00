package main

import (
	"math"
	"strings"
	"testing"
)

func TestParseInputs_SingleObject(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"task_id": "t1", "quotes": [{"maturity": 1.0, "rate": 0.015}]}`)
	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		t.Fatalf("parseInputs error: %v", err)
	}
	if isArray {
		t.Fatalf("isArray mismatch: got true want false")
	}
	if len(inputs) != 1 {
		t.Fatalf("input count mismatch: got %d want 1", len(inputs))
	}
	if inputs[0].TaskID != "t1" {
		t.Fatalf("task id mismatch: got %q want %q", inputs[0].TaskID, "t1")
	}
	if len(inputs[0].Quotes) != 1 || inputs[0].Quotes[0].Maturity != 1.0 {
		t.Fatalf("quotes not parsed: %+v", inputs[0].Quotes)
	}
}

func TestParseInputs_Array(t *testing.T) {
	t.Parallel()

	raw := []byte(`[
		{"task_id": "a", "quotes": [{"maturity": 1.0, "rate": 0.015}]},
		{"task_id": "b", "quotes": [{"maturity": 2.0, "rate": 0.019}]}
	]`)
	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		t.Fatalf("parseInputs error: %v", err)
	}
	if !isArray {
		t.Fatalf("isArray mismatch: got false want true")
	}
	if len(inputs) != 2 {
		t.Fatalf("input count mismatch: got %d want 2", len(inputs))
	}
	if inputs[0].TaskID != "a" || inputs[1].TaskID != "b" {
		t.Fatalf("task ids mismatch: got %q, %q", inputs[0].TaskID, inputs[1].TaskID)
	}
}

func TestParseInputs_Empty(t *testing.T) {
	t.Parallel()

	if _, _, err := parseInputs([]byte("  \n")); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, _, err := parseInputs([]byte("[]")); err == nil {
		t.Fatalf("expected error for empty input array")
	}
}

func TestParseInputs_Malformed(t *testing.T) {
	t.Parallel()

	if _, _, err := parseInputs([]byte(`{"quotes": [`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestBootstrapCurve(t *testing.T) {
	t.Parallel()

	z05 := -math.Log(1.0/(1.0+0.01*0.5)) / 0.5
	input := BootstrapInput{
		Seed: []PillarInput{{Maturity: 0.5, ZeroRate: z05}},
		Quotes: []QuoteInput{
			{Maturity: 2.0, Rate: 0.019},
			{Maturity: 1.0, Rate: 0.015},
		},
		Price: []float64{1.5},
	}

	out, err := bootstrapCurve(input)
	if err != nil {
		t.Fatalf("bootstrapCurve error: %v", err)
	}

	if len(out.Pillars) != 3 {
		t.Fatalf("pillar count mismatch: got %d want 3", len(out.Pillars))
	}
	for i := 1; i < len(out.Pillars); i++ {
		if out.Pillars[i].Maturity <= out.Pillars[i-1].Maturity {
			t.Fatalf("pillars not ascending: %v after %v", out.Pillars[i].Maturity, out.Pillars[i-1].Maturity)
		}
	}

	if len(out.Repricing) != 2 {
		t.Fatalf("repricing count mismatch: got %d want 2", len(out.Repricing))
	}
	if got := out.Repricing[0]; got.Maturity != 1.0 || math.Abs(got.NPV) > 1e-9 {
		t.Fatalf("1Y repricing mismatch: maturity %v npv %v", got.Maturity, got.NPV)
	}
	if got := out.Repricing[1]; got.Maturity != 2.0 || math.Abs(got.NPV) > 1e-3 {
		t.Fatalf("2Y repricing mismatch: maturity %v npv %v", got.Maturity, got.NPV)
	}

	if len(out.Prices) != 1 {
		t.Fatalf("price count mismatch: got %d want 1", len(out.Prices))
	}
	fair := out.Prices[0].FairRate
	if fair <= 0.015 || fair >= 0.019 {
		t.Fatalf("1.5Y fair rate out of range: got %v", fair)
	}
}

func TestBootstrapCurve_MissingQuotes(t *testing.T) {
	t.Parallel()

	_, err := bootstrapCurve(BootstrapInput{})
	if err == nil {
		t.Fatalf("expected error for missing quotes")
	}
	if !strings.Contains(err.Error(), "quotes") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBootstrapCurve_InvalidSeed(t *testing.T) {
	t.Parallel()

	input := BootstrapInput{
		Seed:   []PillarInput{{Maturity: -1.0, ZeroRate: 0.01}},
		Quotes: []QuoteInput{{Maturity: 1.0, Rate: 0.015}},
	}
	if _, err := bootstrapCurve(input); err == nil {
		t.Fatalf("expected error for invalid seed pillar")
	}
}

func TestBootstrapCurve_DefaultTenor(t *testing.T) {
	t.Parallel()

	quotes := []QuoteInput{{Maturity: 1.0, Rate: 0.015}, {Maturity: 2.0, Rate: 0.019}}

	implicit, err := bootstrapCurve(BootstrapInput{Quotes: quotes})
	if err != nil {
		t.Fatalf("bootstrapCurve error: %v", err)
	}
	explicit, err := bootstrapCurve(BootstrapInput{Tenor: 0.5, Quotes: quotes})
	if err != nil {
		t.Fatalf("bootstrapCurve error: %v", err)
	}

	if len(implicit.Pillars) != len(explicit.Pillars) {
		t.Fatalf("pillar count mismatch: got %d want %d", len(implicit.Pillars), len(explicit.Pillars))
	}
	for i := range implicit.Pillars {
		if implicit.Pillars[i].ZeroRate != explicit.Pillars[i].ZeroRate {
			t.Fatalf("pillar %d mismatch: got %.12f want %.12f",
				i, implicit.Pillars[i].ZeroRate, explicit.Pillars[i].ZeroRate)
		}
	}
}
