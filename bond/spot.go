package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/ratetree/shortrate"
	"github.com/meenmo/ratetree/utils"
)

// ZeroCouponResult is the output of PriceZeroCoupon.
type ZeroCouponResult struct {
	// Price is the no-arbitrage present value at the root node (0,0).
	Price float64
	// SpotRate is the annualized rate solving Price = Notional/(1+spot)^T,
	// as a decimal (0.06676 == 6.676%).
	SpotRate float64
	// Notional is the terminal payoff actually used (default applied).
	Notional float64
	// Horizon is the number of periods to maturity.
	Horizon int
}

// PriceZeroCoupon prices the bond on the binomial lattice and annualizes the
// root price into a spot rate.
//
// Fails with ErrDomain when Horizon < 1; use PriceLattice directly for a
// zero-horizon price.
func PriceZeroCoupon(in ZeroCouponInput, opts ...shortrate.Option) (ZeroCouponResult, error) {
	notional, err := in.notional()
	if err != nil {
		return ZeroCouponResult{}, fmt.Errorf("PriceZeroCoupon: %w", err)
	}
	if in.Horizon < 1 {
		return ZeroCouponResult{}, fmt.Errorf("PriceZeroCoupon: horizon %d must be at least 1: %w", in.Horizon, ErrDomain)
	}

	prices, err := PriceLattice(in, opts...)
	if err != nil {
		return ZeroCouponResult{}, fmt.Errorf("PriceZeroCoupon: %w", err)
	}

	price, err := prices.At(0, 0)
	if err != nil {
		return ZeroCouponResult{}, fmt.Errorf("PriceZeroCoupon: %w", err)
	}
	spot, err := SpotRate(notional, price, in.Horizon)
	if err != nil {
		return ZeroCouponResult{}, fmt.Errorf("PriceZeroCoupon: %w", err)
	}

	return ZeroCouponResult{
		Price:    price,
		SpotRate: spot,
		Notional: notional,
		Horizon:  in.Horizon,
	}, nil
}

// SpotRate solves notional = price · (1+spot)^horizon for spot:
//
//	spot = (notional/price)^(1/T) − 1
//
// Fails with ErrDomain for horizon < 1 (undefined exponent) or a
// non-positive price or notional.
func SpotRate(notional, price float64, horizon int) (float64, error) {
	if horizon < 1 {
		return 0, fmt.Errorf("SpotRate: horizon %d must be at least 1: %w", horizon, ErrDomain)
	}
	if price <= 0 {
		return 0, fmt.Errorf("SpotRate: price %g must be positive: %w", price, ErrDomain)
	}
	if notional <= 0 {
		return 0, fmt.Errorf("SpotRate: notional %g must be positive: %w", notional, ErrDomain)
	}

	spot := math.Pow(notional/price, 1.0/float64(horizon)) - 1.0
	if !utils.IsFinite(spot) {
		return 0, fmt.Errorf("SpotRate: result is not finite: %w", shortrate.ErrNotFinite)
	}
	return spot, nil
}

// SpotRateFromModel is the one-shot pipeline: build both lattices and return
// only the annualized spot rate.
func SpotRateFromModel(in ZeroCouponInput, opts ...shortrate.Option) (float64, error) {
	res, err := PriceZeroCoupon(in, opts...)
	if err != nil {
		return 0, fmt.Errorf("SpotRateFromModel: %w", err)
	}
	return res.SpotRate, nil
}
