package bond

import "errors"

// ErrDomain is returned when a pricing request is outside the model's domain:
// a negative horizon, a non-positive notional, a non-positive bond price, a
// zero-horizon spot-rate request, or a short rate at or below -100% (which
// makes the one-period discount factor blow up).
var ErrDomain = errors.New("bond: input outside pricing domain")

// DefaultNotional is the terminal payoff of the zero-coupon bond, per-100.
const DefaultNotional = 100.0
