// Package shortrate implements a single-factor recombining binomial model of
// the short interest rate. Each period the rate is multiplied by the up-move
// or the down-move factor; because multiplication commutes, a node depends
// only on the count of up-moves, collapsing the 2^T path tree into a
// triangular lattice of O(T²) cells.
package shortrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/ratetree/lattice"
	"github.com/meenmo/ratetree/utils"
)

// ErrNotFinite is returned when a node rate overflows or underflows double
// precision (extreme factors raised to large powers). A non-finite rate must
// never propagate silently into discounting.
var ErrNotFinite = errors.New("shortrate: rate is not finite")

// Model holds the three parameters of the binomial short-rate lattice.
//
// The reference model places no sign constraint on any parameter; callers
// wanting to forbid negative rates must do so themselves.
type Model struct {
	// Initial is the short rate at the root node (0,0), as a decimal
	// (0.06 == 6%).
	Initial float64
	// UpMove is the multiplicative factor applied on an up transition.
	UpMove float64
	// DownMove is the multiplicative factor applied on a down transition.
	DownMove float64
}

// NodeRate returns the short rate at (time, state):
//
//	rate(i,j) = u^j · d^(i−j) · r0
//
// where j counts up-moves among the i elapsed periods. The closed form is
// exact for any construction order since the shocks commute.
//
// Returns lattice.ErrInvalidState when state > time (more up-moves than
// elapsed periods), lattice.ErrOutOfRange for a negative index, and
// ErrNotFinite when the result is NaN or ±Inf.
func (m Model) NodeRate(time, state int) (float64, error) {
	if time < 0 || state < 0 {
		return 0, fmt.Errorf("NodeRate(%d,%d): %w", time, state, lattice.ErrOutOfRange)
	}
	if state > time {
		return 0, fmt.Errorf("NodeRate(%d,%d): %w", time, state, lattice.ErrInvalidState)
	}

	r := math.Pow(m.UpMove, float64(state)) * math.Pow(m.DownMove, float64(time-state)) * m.Initial
	if !utils.IsFinite(r) {
		return 0, fmt.Errorf("NodeRate(%d,%d): u=%g d=%g r0=%g: %w",
			time, state, m.UpMove, m.DownMove, m.Initial, ErrNotFinite)
	}
	return r, nil
}

// RateLattice builds the full triangular rate lattice for times 0..horizon,
// every valid cell filled via NodeRate. Cells have no inter-cell dependency,
// so the build is deterministic and each cell is computed exactly once.
//
// Any non-finite cell aborts the build; a partial lattice is never returned.
func (m Model) RateLattice(horizon int, opts ...Option) (*lattice.Lattice, error) {
	tree, err := lattice.New(horizon)
	if err != nil {
		return nil, fmt.Errorf("RateLattice: %w", err)
	}

	cfg := applyOptions(opts)
	for time := 0; time <= horizon; time++ {
		for state := 0; state <= time; state++ {
			r, err := m.NodeRate(time, state)
			if err != nil {
				return nil, fmt.Errorf("RateLattice: %w", err)
			}
			if err = tree.Set(time, state, r); err != nil {
				return nil, fmt.Errorf("RateLattice: %w", err)
			}
		}
		cfg.report(StageRates, time+1, horizon+1)
	}
	return tree, nil
}
