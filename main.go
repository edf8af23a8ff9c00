package main

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/meenmo/parcurve/curve"
	"github.com/meenmo/parcurve/export"
	"github.com/meenmo/parcurve/marketdata"
	"github.com/meenmo/parcurve/swap"
)

func main() {
	feed := marketdata.DefaultQuoteFeed()
	quotes, err := feed.Quotes(context.Background(), marketdata.SampleDate)
	if err != nil {
		log.Fatalf("load quotes: %v", err)
	}

	// Seed the short end with the 6M zero-coupon bond implied by a 1%
	// simple deposit.
	seed := curve.New()
	df := 1.0 / (1.0 + 0.01*0.5)
	if err := seed.AddNode(0.5, -math.Log(df)/0.5); err != nil {
		log.Fatalf("seed curve: %v", err)
	}

	b, err := swap.NewBootstrapper(quotes, swap.DefaultTenor)
	if err != nil {
		log.Fatalf("build bootstrapper: %v", err)
	}
	b.Progress = func(q swap.Quote, zero float64) {
		fmt.Printf("  bootstrapped %4.1fY  par %7.4f%%  zero %8.5f%%\n", q.Maturity, q.Rate*100, zero*100)
	}

	fmt.Printf("Bootstrapping zero curve from %d par swap quotes (%s)\n",
		len(quotes), marketdata.SampleDate.Format("2006-01-02"))
	zeroCurve, err := b.Calibrate(seed)
	if err != nil {
		log.Fatalf("calibrate: %v", err)
	}

	fmt.Println("\nZero curve:")
	for _, p := range zeroCurve.Pillars() {
		fmt.Printf("  %4.1fY  zero %8.5f%%  df %.8f\n", p.Maturity, p.Rate*100, zeroCurve.DiscountFactor(p.Maturity))
	}

	pricer, err := swap.NewPricer(swap.DefaultTenor)
	if err != nil {
		log.Fatalf("build pricer: %v", err)
	}

	fmt.Println("\nRepricing market quotes:")
	fmt.Println("  Maturity   Market     Fair        NPV")
	for _, q := range b.Quotes() {
		fair, err := pricer.FairRate(zeroCurve, q.Maturity)
		if err != nil {
			log.Fatalf("fair rate %.1fY: %v", q.Maturity, err)
		}
		npv, err := pricer.PriceSwap(zeroCurve, q.Maturity, q.Rate)
		if err != nil {
			log.Fatalf("price %.1fY: %v", q.Maturity, err)
		}
		fmt.Printf("  %6.1fY  %7.4f%%  %7.4f%%  %12.3e\n", q.Maturity, q.Rate*100, fair*100, npv)
	}

	fmt.Println("\nInterpolated par rates:")
	interp := make([]swap.Quote, 0, 3)
	for _, m := range []float64{4.0, 4.7, 5.5} {
		fair, err := pricer.FairRate(zeroCurve, m)
		if err != nil {
			log.Fatalf("fair rate %.1fY: %v", m, err)
		}
		fmt.Printf("  %4.1fY  %7.4f%%\n", m, fair*100)
		interp = append(interp, swap.Quote{Maturity: m, Rate: fair})
	}

	if err := export.WriteQuotesFile("swap_quotes.csv", quotes); err != nil {
		log.Fatalf("export quotes: %v", err)
	}
	if err := export.WriteQuotesFile("interpolated_swaps.csv", interp); err != nil {
		log.Fatalf("export interpolated swaps: %v", err)
	}
	if err := export.WriteCurveFile("zero_curve.csv", zeroCurve); err != nil {
		log.Fatalf("export curve: %v", err)
	}
	fmt.Println("\nWrote swap_quotes.csv, interpolated_swaps.csv, zero_curve.csv")
}
