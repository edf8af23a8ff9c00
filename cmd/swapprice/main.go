package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/parcurve/curve"
	"github.com/meenmo/parcurve/swap"
	"github.com/meenmo/parcurve/utils"
)

// PillarInput is one zero-rate point of the discount curve.
type PillarInput struct {
	Maturity float64 `json:"maturity"`
	ZeroRate float64 `json:"zero_rate"`
}

// SwapInput is a receive-float pay-fixed swap to value.
type SwapInput struct {
	Maturity  float64 `json:"maturity"`
	FixedRate float64 `json:"fixed_rate"`
}

// PricingInput defines the JSON input schema for swap valuation on a given
// zero curve.
type PricingInput struct {
	TaskID string `json:"task_id,omitempty"`

	Tenor float64       `json:"tenor,omitempty"` // fixed-leg interval, defaults to 0.5
	Curve []PillarInput `json:"curve"`
	Swaps []SwapInput   `json:"swaps"`
}

// SwapOutput reports the fair rate and value per unit notional for one swap.
type SwapOutput struct {
	Maturity       float64 `json:"maturity"`
	FixedRate      float64 `json:"fixed_rate"`
	FairRate       float64 `json:"fair_rate"`
	NPV            float64 `json:"npv"`
	DiscountFactor float64 `json:"discount_factor"`
}

// PricingOutput defines the JSON output schema.
type PricingOutput struct {
	TaskID string       `json:"task_id,omitempty"`
	Swaps  []SwapOutput `json:"swaps,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (optional; if set, ignores stdin)")
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

	hadError := false
	outputs := make([]PricingOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := priceSwaps(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, PricingOutput{
				TaskID: in.TaskID,
				Error:  err.Error(),
			})
			continue
		}
		outputs = append(outputs, *out)
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
	fmt.Println("  swapprice < input.json")
	fmt.Println("  swapprice -input /path/to/input.json")
	fmt.Println()
	fmt.Println("Read a zero curve and swaps, output fair rates and NPVs as JSON.")
	fmt.Println()
	fmt.Println("Example input:")
	fmt.Println(`  {`)
	fmt.Println(`    "curve": [{"maturity": 0.5, "zero_rate": 0.00997508}, {"maturity": 2.0, "zero_rate": 0.018979}],`)
	fmt.Println(`    "swaps": [{"maturity": 1.5, "fixed_rate": 0.017}]`)
	fmt.Println(`  }`)
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]PricingInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var inputs []PricingInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}

	var input PricingInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []PricingInput{input}, false, nil
}

func writeError(msg string) {
	output := PricingOutput{Error: msg}
	outputBytes, _ := json.Marshal(output)
	fmt.Println(string(outputBytes))
	os.Exit(1)
}

func priceSwaps(input PricingInput) (*PricingOutput, error) {
	if len(input.Curve) == 0 {
		return nil, fmt.Errorf("curve is required")
	}
	if len(input.Swaps) == 0 {
		return nil, fmt.Errorf("swaps is required")
	}
	tenor := input.Tenor
	if tenor == 0 {
		tenor = swap.DefaultTenor
	}

	c := curve.New()
	for _, p := range input.Curve {
		if err := c.AddNode(p.Maturity, p.ZeroRate); err != nil {
			return nil, fmt.Errorf("invalid curve pillar: %v", err)
		}
	}

	pricer, err := swap.NewPricer(tenor)
	if err != nil {
		return nil, fmt.Errorf("failed to build pricer: %v", err)
	}

	out := &PricingOutput{TaskID: input.TaskID}
	for _, s := range input.Swaps {
		fair, err := pricer.FairRate(c, s.Maturity)
		if err != nil {
			return nil, fmt.Errorf("failed to price %gY: %v", s.Maturity, err)
		}
		npv, err := pricer.PriceSwap(c, s.Maturity, s.FixedRate)
		if err != nil {
			return nil, fmt.Errorf("failed to price %gY: %v", s.Maturity, err)
		}
		out.Swaps = append(out.Swaps, SwapOutput{
			Maturity:       s.Maturity,
			FixedRate:      s.FixedRate,
			FairRate:       utils.RoundTo(fair, 12),
			NPV:            utils.RoundTo(npv, 12),
			DiscountFactor: utils.RoundTo(c.DiscountFactor(s.Maturity), 12),
		})
	}

	return out, nil
}
