package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/knotkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are
// rejected before allocation.
func TestNewDense_BadShape(t *testing.T) {
	for _, rc := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		_, err := matrix.NewDense(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

// TestDense_AtSetRoundTrip verifies bounds-checked element access.
func TestDense_AtSetRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

// TestNewDenseFrom_Ragged verifies ragged and empty inputs fail.
func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_CloneIsDeep verifies that Clone does not share storage.
func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not affect the original")
}

// TestValidators_Composition exercises nil, square, symmetry and
// finiteness checks with their sentinels.
func TestValidators_Composition(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sym, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(sym, matrix.DefaultEpsilon))

	asym, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1 + 1e-6, 0}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, matrix.DefaultEpsilon), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(asym, 1e-3), "a looser epsilon admits the same matrix")

	bad, err := matrix.NewDenseFrom([][]float64{{0, math.NaN()}, {1, 0}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)

	inf, err := matrix.NewDenseFrom([][]float64{{0, math.Inf(-1)}, {1, 0}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateFinite(inf), matrix.ErrNaNInf)
}
