package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratetree/lattice"
)

func TestNew_NegativeHorizon(t *testing.T) {
	t.Parallel()

	_, err := lattice.New(-1)
	require.ErrorIs(t, err, lattice.ErrNegativeHorizon)
}

func TestCellCount(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		horizon int
		want    int
	}{
		{0, 1},
		{1, 3},
		{4, 15},
		{5, 21},
	} {
		l, err := lattice.New(tc.horizon)
		require.NoError(t, err)
		assert.Equal(t, tc.want, l.CellCount(), "horizon %d", tc.horizon)
		assert.Equal(t, tc.horizon, l.Horizon())
	}
}

func TestAtSet_RoundTrip(t *testing.T) {
	t.Parallel()

	l, err := lattice.New(3)
	require.NoError(t, err)

	require.NoError(t, l.Set(2, 1, 0.0675))
	v, err := l.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0675, v)

	// Untouched cells read back as zero.
	v, err = l.At(3, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestAt_InvalidState(t *testing.T) {
	t.Parallel()

	l, err := lattice.New(5)
	require.NoError(t, err)

	for _, idx := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}, {2, 5}} {
		_, err = l.At(idx[0], idx[1])
		assert.ErrorIs(t, err, lattice.ErrInvalidState, "At(%d,%d)", idx[0], idx[1])

		err = l.Set(idx[0], idx[1], 1.0)
		assert.ErrorIs(t, err, lattice.ErrInvalidState, "Set(%d,%d)", idx[0], idx[1])
	}
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	l, err := lattice.New(2)
	require.NoError(t, err)

	_, err = l.At(3, 0)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
	_, err = l.At(-1, 0)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
	_, err = l.At(1, -1)
	assert.ErrorIs(t, err, lattice.ErrInvalidState)
}

func TestMustAt_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	l, err := lattice.New(2)
	require.NoError(t, err)

	assert.Panics(t, func() { l.MustAt(1, 2) })
	assert.NotPanics(t, func() { l.MustAt(2, 2) })
}

func TestRow_ReturnsCopy(t *testing.T) {
	t.Parallel()

	l, err := lattice.New(2)
	require.NoError(t, err)
	require.NoError(t, l.Set(1, 0, 0.054))
	require.NoError(t, l.Set(1, 1, 0.075))

	row, err := l.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.054, 0.075}, row)

	row[0] = -1
	v, err := l.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.054, v, "mutating the returned row must not touch the lattice")

	_, err = l.Row(3)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	l, err := lattice.New(2)
	require.NoError(t, err)
	require.NoError(t, l.Set(2, 2, 100))

	c := l.Clone()
	require.True(t, l.Equal(c))

	require.NoError(t, c.Set(2, 2, 99))
	assert.False(t, l.Equal(c))
	assert.Equal(t, 100.0, l.MustAt(2, 2))
}

func TestEqual_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a, err := lattice.New(2)
	require.NoError(t, err)
	b, err := lattice.New(3)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}
