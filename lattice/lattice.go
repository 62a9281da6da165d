// Package lattice provides the triangular grid backing recombining binomial
// trees. A lattice cell is addressed by (time, state) with 0 <= state <= time,
// so row i holds exactly i+1 values. Rows are stored ragged; the structurally
// invalid region state > time is simply not representable.
package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a cell access has state > time.
	// Recombination allows at most one up-move per elapsed period, so this
	// always indicates a programming error in the caller, not bad input.
	ErrInvalidState = errors.New("lattice: state exceeds time")

	// ErrOutOfRange is returned when a time index falls outside [0, horizon].
	ErrOutOfRange = errors.New("lattice: time index out of range")

	// ErrNegativeHorizon is returned by New for a horizon below zero.
	ErrNegativeHorizon = errors.New("lattice: horizon must be non-negative")
)

// Lattice is a triangular grid of float64 values indexed by (time, state).
//
// Builders fill every valid cell exactly once and hand the lattice to the
// caller; afterwards it is treated as read-only.
type Lattice struct {
	rows [][]float64
}

// New allocates a lattice covering times 0..horizon with all cells zero.
func New(horizon int) (*Lattice, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("New: horizon %d: %w", horizon, ErrNegativeHorizon)
	}
	rows := make([][]float64, horizon+1)
	for i := range rows {
		rows[i] = make([]float64, i+1)
	}
	return &Lattice{rows: rows}, nil
}

// Horizon returns the last time index T.
func (l *Lattice) Horizon() int {
	return len(l.rows) - 1
}

// CellCount returns the number of valid cells, (T+1)(T+2)/2.
func (l *Lattice) CellCount() int {
	n := len(l.rows)
	return n * (n + 1) / 2
}

// At returns the value at (time, state).
func (l *Lattice) At(time, state int) (float64, error) {
	if err := l.check(time, state); err != nil {
		return 0, fmt.Errorf("At(%d,%d): %w", time, state, err)
	}
	return l.rows[time][state], nil
}

// MustAt is At for indices already known to be valid; it panics otherwise.
func (l *Lattice) MustAt(time, state int) float64 {
	v, err := l.At(time, state)
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes the value at (time, state).
func (l *Lattice) Set(time, state int, v float64) error {
	if err := l.check(time, state); err != nil {
		return fmt.Errorf("Set(%d,%d): %w", time, state, err)
	}
	l.rows[time][state] = v
	return nil
}

// Row returns a copy of the values at one time step, states 0..time.
func (l *Lattice) Row(time int) ([]float64, error) {
	if time < 0 || time >= len(l.rows) {
		return nil, fmt.Errorf("Row(%d): %w", time, ErrOutOfRange)
	}
	out := make([]float64, len(l.rows[time]))
	copy(out, l.rows[time])
	return out, nil
}

// Clone returns an independent copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	rows := make([][]float64, len(l.rows))
	for i, r := range l.rows {
		rows[i] = make([]float64, len(r))
		copy(rows[i], r)
	}
	return &Lattice{rows: rows}
}

// Equal reports whether two lattices have identical shape and bit-identical
// cell values. NaN cells compare unequal, as with ==.
func (l *Lattice) Equal(o *Lattice) bool {
	if o == nil || len(l.rows) != len(o.rows) {
		return false
	}
	for i, r := range l.rows {
		for j, v := range r {
			if v != o.rows[i][j] {
				return false
			}
		}
	}
	return true
}

func (l *Lattice) check(time, state int) error {
	if time < 0 || time >= len(l.rows) {
		return ErrOutOfRange
	}
	if state < 0 || state > time {
		return ErrInvalidState
	}
	return nil
}
