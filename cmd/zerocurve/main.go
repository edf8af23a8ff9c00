package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/meenmo/parcurve/curve"
	"github.com/meenmo/parcurve/swap"
	"github.com/meenmo/parcurve/utils"
)

// QuoteInput is a single par swap quote in the JSON input schema.
type QuoteInput struct {
	Maturity float64 `json:"maturity"`
	Rate     float64 `json:"rate"`
}

// PillarInput seeds the curve with an externally sourced zero rate.
type PillarInput struct {
	Maturity float64 `json:"maturity"`
	ZeroRate float64 `json:"zero_rate"`
}

// BootstrapInput defines the JSON input schema for curve bootstrapping.
type BootstrapInput struct {
	TaskID string `json:"task_id,omitempty"`

	Tenor  float64       `json:"tenor,omitempty"` // fixed-leg interval, defaults to 0.5
	Seed   []PillarInput `json:"seed,omitempty"`
	Quotes []QuoteInput  `json:"quotes"`
	Price  []float64     `json:"price,omitempty"` // extra maturities to quote fair rates for
}

// PillarOutput is one calibrated curve point.
type PillarOutput struct {
	Maturity       float64 `json:"maturity"`
	ZeroRate       float64 `json:"zero_rate"`
	DiscountFactor float64 `json:"discount_factor"`
}

// RepricingOutput reports how closely the calibrated curve reproduces an
// input quote.
type RepricingOutput struct {
	Maturity   float64 `json:"maturity"`
	MarketRate float64 `json:"market_rate"`
	FairRate   float64 `json:"fair_rate"`
	NPV        float64 `json:"npv"`
}

// PriceOutput is the fair rate for a requested off-pillar maturity.
type PriceOutput struct {
	Maturity float64 `json:"maturity"`
	FairRate float64 `json:"fair_rate"`
}

// BootstrapOutput defines the JSON output schema.
type BootstrapOutput struct {
	TaskID    string            `json:"task_id,omitempty"`
	Pillars   []PillarOutput    `json:"pillars,omitempty"`
	Repricing []RepricingOutput `json:"repricing,omitempty"`
	Prices    []PriceOutput     `json:"prices,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (optional; if set, ignores stdin)")
	workers := flag.Int("workers", 4, "Parallel calibrations for array input")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		usage()
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			usage()
			os.Exit(2)
		}
	}

	inputBytes, err := readInput(path)
	if err != nil {
		writeError(fmt.Sprintf("failed to read input: %v", err))
		return
	}

	inputs, isArray, err := parseInputs(inputBytes)
	if err != nil {
		writeError(fmt.Sprintf("failed to parse JSON input: %v", err))
		return
	}

	outputs := make([]BootstrapOutput, len(inputs))

	var g errgroup.Group
	g.SetLimit(*workers)
	for i, in := range inputs {
		i, in := i, in // per-iteration copies (required while go.mod targets go < 1.22)
		g.Go(func() error {
			out, err := bootstrapCurve(in)
			if err != nil {
				outputs[i] = BootstrapOutput{
					TaskID: in.TaskID,
					Error:  err.Error(),
				}
				return nil // continue other tasks
			}
			outputs[i] = *out
			return nil
		})
	}
	_ = g.Wait()

	hadError := false
	for _, out := range outputs {
		if out.Error != "" {
			hadError = true
			break
		}
	}

	if isArray {
		outputBytes, _ := json.Marshal(outputs)
		fmt.Println(string(outputBytes))
	} else {
		outputBytes, _ := json.Marshal(outputs[0])
		fmt.Println(string(outputBytes))
	}

	if hadError {
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  zerocurve < input.json")
	fmt.Println("  zerocurve -input /path/to/input.json")
	fmt.Println()
	fmt.Println("Read par swap quotes, bootstrap a zero curve, output JSON to stdout.")
	fmt.Println()
	fmt.Println("Example input:")
	fmt.Println(`  {`)
	fmt.Println(`    "tenor": 0.5,`)
	fmt.Println(`    "seed": [{"maturity": 0.5, "zero_rate": 0.00997508}],`)
	fmt.Println(`    "quotes": [{"maturity": 1.0, "rate": 0.015}, {"maturity": 2.0, "rate": 0.019}],`)
	fmt.Println(`    "price": [1.5, 4.7]`)
	fmt.Println(`  }`)
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]BootstrapInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var inputs []BootstrapInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}

	var input BootstrapInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []BootstrapInput{input}, false, nil
}

func writeError(msg string) {
	output := BootstrapOutput{Error: msg}
	outputBytes, _ := json.Marshal(output)
	fmt.Println(string(outputBytes))
	os.Exit(1)
}

func bootstrapCurve(input BootstrapInput) (*BootstrapOutput, error) {
	if len(input.Quotes) == 0 {
		return nil, fmt.Errorf("quotes is required")
	}
	tenor := input.Tenor
	if tenor == 0 {
		tenor = swap.DefaultTenor
	}

	seed := curve.New()
	for _, p := range input.Seed {
		if err := seed.AddNode(p.Maturity, p.ZeroRate); err != nil {
			return nil, fmt.Errorf("invalid seed pillar: %v", err)
		}
	}

	quotes := make([]swap.Quote, len(input.Quotes))
	for i, q := range input.Quotes {
		quotes[i] = swap.Quote{Maturity: q.Maturity, Rate: q.Rate}
	}

	b, err := swap.NewBootstrapper(quotes, tenor)
	if err != nil {
		return nil, fmt.Errorf("failed to build bootstrapper: %v", err)
	}
	calibrated, err := b.Calibrate(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to calibrate: %v", err)
	}

	pricer, err := swap.NewPricer(tenor)
	if err != nil {
		return nil, fmt.Errorf("failed to build pricer: %v", err)
	}

	out := &BootstrapOutput{TaskID: input.TaskID}

	for _, p := range calibrated.Pillars() {
		out.Pillars = append(out.Pillars, PillarOutput{
			Maturity:       p.Maturity,
			ZeroRate:       utils.RoundTo(p.Rate, 12),
			DiscountFactor: utils.RoundTo(calibrated.DiscountFactor(p.Maturity), 12),
		})
	}

	for _, q := range b.Quotes() {
		fair, err := pricer.FairRate(calibrated, q.Maturity)
		if err != nil {
			return nil, fmt.Errorf("failed to reprice %gY: %v", q.Maturity, err)
		}
		npv, err := pricer.PriceSwap(calibrated, q.Maturity, q.Rate)
		if err != nil {
			return nil, fmt.Errorf("failed to reprice %gY: %v", q.Maturity, err)
		}
		out.Repricing = append(out.Repricing, RepricingOutput{
			Maturity:   q.Maturity,
			MarketRate: q.Rate,
			FairRate:   utils.RoundTo(fair, 12),
			NPV:        utils.RoundTo(npv, 12),
		})
	}

	for _, m := range input.Price {
		fair, err := pricer.FairRate(calibrated, m)
		if err != nil {
			return nil, fmt.Errorf("failed to price %gY: %v", m, err)
		}
		out.Prices = append(out.Prices, PriceOutput{
			Maturity: m,
			FairRate: utils.RoundTo(fair, 12),
		})
	}

	return out, nil
}
