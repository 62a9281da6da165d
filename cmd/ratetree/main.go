package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/meenmo/ratetree/bond"
	"github.com/meenmo/ratetree/lattice"
	"github.com/meenmo/ratetree/shortrate"
)

func main() {
	initial := flag.Float64("r0", 0.06, "Initial short rate (decimal)")
	up := flag.Float64("u", 1.25, "Up-move factor per period")
	down := flag.Float64("d", 0.9, "Down-move factor per period")
	horizon := flag.Int("T", 4, "Number of periods")
	prices := flag.Bool("prices", false, "Also print the zero-coupon price lattice and spot rate")
	notional := flag.Float64("notional", 0, "Terminal payoff (0 = default 100)")
	progress := flag.Bool("progress", false, "Log build progress per time step")
	logJSON := flag.Bool("log-json", false, "Emit progress logs as JSON")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *logJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	var opts []shortrate.Option
	if *progress {
		opts = append(opts, shortrate.WithProgress(func(stage string, step, total int) {
			logger.WithFields(logrus.Fields{
				"stage": stage,
				"step":  step,
				"total": total,
			}).Info("lattice build")
		}))
	}

	model := shortrate.Model{Initial: *initial, UpMove: *up, DownMove: *down}

	rates, err := model.RateLattice(*horizon, opts...)
	if err != nil {
		logger.WithError(err).Fatal("rate lattice build failed")
	}
	fmt.Println("Rate lattice:")
	printLattice(rates, "%9.6f")

	if !*prices {
		return
	}

	in := bond.ZeroCouponInput{Model: model, Horizon: *horizon, Notional: *notional}
	priceTree, err := bond.PriceLatticeFromRates(rates, in, opts...)
	if err != nil {
		logger.WithError(err).Fatal("price lattice build failed")
	}
	fmt.Println("Price lattice:")
	printLattice(priceTree, "%10.5f")

	payoff := *notional
	if payoff == 0 {
		payoff = bond.DefaultNotional
	}
	price := priceTree.MustAt(0, 0)
	spot, err := bond.SpotRate(payoff, price, *horizon)
	if err != nil {
		logger.WithError(err).Fatal("spot rate extraction failed")
	}
	fmt.Printf("Bond price: %.5f\n", price)
	fmt.Printf("Spot rate:  %.5f\n", spot)
}

func printLattice(l *lattice.Lattice, cellFmt string) {
	for i := 0; i <= l.Horizon(); i++ {
		row, err := l.Row(i)
		if err != nil {
			panic(err)
		}
		fmt.Printf("t=%-3d", i)
		for _, v := range row {
			fmt.Printf(" "+cellFmt, v)
		}
		fmt.Println()
	}
}
