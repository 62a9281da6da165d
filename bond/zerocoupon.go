package bond

import (
	"fmt"

	"github.com/meenmo/ratetree/lattice"
	"github.com/meenmo/ratetree/shortrate"
	"github.com/meenmo/ratetree/utils"
)

// ZeroCouponInput holds the parameters needed to price a zero-coupon bond on
// a binomial short-rate lattice.
type ZeroCouponInput struct {
	// Model is the short-rate lattice model (r0, up-move, down-move).
	Model shortrate.Model
	// Horizon is the number of periods until maturity.
	Horizon int
	// Notional is the terminal payoff. Zero means DefaultNotional (100).
	Notional float64
}

// notional resolves the default and rejects non-positive explicit values.
func (in ZeroCouponInput) notional() (float64, error) {
	if in.Notional == 0 {
		return DefaultNotional, nil
	}
	if in.Notional < 0 {
		return 0, fmt.Errorf("notional %g must be positive: %w", in.Notional, ErrDomain)
	}
	return in.Notional, nil
}

// PriceLattice builds the rate lattice for in.Model and runs the backward
// induction, returning the resulting price lattice. The two stages never
// interleave: the rate lattice is fully built, then consumed read-only.
func PriceLattice(in ZeroCouponInput, opts ...shortrate.Option) (*lattice.Lattice, error) {
	rates, err := in.Model.RateLattice(in.Horizon, opts...)
	if err != nil {
		return nil, fmt.Errorf("PriceLattice: %w", err)
	}
	return PriceLatticeFromRates(rates, in, opts...)
}

// PriceLatticeFromRates runs the backward induction against an already-built
// rate lattice.
//
// The terminal row is set to the notional; every earlier cell is the
// discounted risk-neutral expectation of the two successor cells, with up and
// down probabilities fixed at 0.5 each:
//
//	P[i][j] = 0.5 · (P[i+1][j+1] + P[i+1][j]) / (1 + R[i][j])
//
// Rows are processed in strictly decreasing time order; within a row the
// state order is immaterial. On any error the partial lattice is discarded.
func PriceLatticeFromRates(rates *lattice.Lattice, in ZeroCouponInput, opts ...shortrate.Option) (*lattice.Lattice, error) {
	notional, err := in.notional()
	if err != nil {
		return nil, fmt.Errorf("PriceLatticeFromRates: %w", err)
	}
	horizon := in.Horizon
	if horizon < 0 {
		return nil, fmt.Errorf("PriceLatticeFromRates: horizon %d must be non-negative: %w", horizon, ErrDomain)
	}
	if rates == nil || rates.Horizon() < horizon {
		return nil, fmt.Errorf("PriceLatticeFromRates: rate lattice covers %d periods, need %d: %w",
			rateHorizon(rates), horizon, ErrDomain)
	}

	prices, err := lattice.New(horizon)
	if err != nil {
		return nil, fmt.Errorf("PriceLatticeFromRates: %w", err)
	}

	for state := 0; state <= horizon; state++ {
		if err = prices.Set(horizon, state, notional); err != nil {
			return nil, fmt.Errorf("PriceLatticeFromRates: %w", err)
		}
	}

	shortrate.ReportProgress(opts, shortrate.StagePrices, 1, horizon+1)

	for time := horizon - 1; time >= 0; time-- {
		for state := 0; state <= time; state++ {
			rate, err := rates.At(time, state)
			if err != nil {
				return nil, fmt.Errorf("PriceLatticeFromRates: %w", err)
			}
			p, err := discountStep(prices, time, state, rate)
			if err != nil {
				return nil, fmt.Errorf("PriceLatticeFromRates: %w", err)
			}
			if err = prices.Set(time, state, p); err != nil {
				return nil, fmt.Errorf("PriceLatticeFromRates: %w", err)
			}
		}
		shortrate.ReportProgress(opts, shortrate.StagePrices, horizon-time+1, horizon+1)
	}

	return prices, nil
}

// discountStep computes one cell of the backward pass from the row below it.
func discountStep(prices *lattice.Lattice, time, state int, rate float64) (float64, error) {
	denom := 1.0 + rate
	if denom <= 0 {
		return 0, fmt.Errorf("rate %g at (%d,%d) gives discount denominator %g: %w",
			rate, time, state, denom, ErrDomain)
	}

	up, err := prices.At(time+1, state+1)
	if err != nil {
		return 0, err
	}
	down, err := prices.At(time+1, state)
	if err != nil {
		return 0, err
	}

	p := 0.5 * (up + down) / denom
	if !utils.IsFinite(p) {
		return 0, fmt.Errorf("price at (%d,%d) is not finite: %w", time, state, shortrate.ErrNotFinite)
	}
	return p, nil
}

func rateHorizon(rates *lattice.Lattice) int {
	if rates == nil {
		return -1
	}
	return rates.Horizon()
}
