package knots_test

import (
	"testing"

	"github.com/katalvlaran/knotkit/knots"
	"github.com/katalvlaran/knotkit/spacecurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constructors under test, with their names for failure messages.
var constructors = map[string]func(int) (spacecurve.Curve, error){
	"Unknot":        knots.Unknot,
	"Trefoil":       knots.Trefoil,
	"FigureEight":   knots.FigureEight,
	"ThreeTwist":    knots.ThreeTwist,
	"Stevedore":     knots.Stevedore,
	"DoubleTrefoil": knots.DoubleTrefoil,
	"K8_21":         knots.K8_21,
}

// TestConstructors_ShapeAndClosure verifies point count, closedness
// and the no-duplicate-endpoint sampling convention.
func TestConstructors_ShapeAndClosure(t *testing.T) {
	for name, mk := range constructors {
		c, err := mk(64)
		require.NoError(t, err, name)
		assert.Equal(t, 64, c.Len(), name)
		assert.True(t, c.Closed(), name)

		pts := c.Points()
		assert.NotEqual(t, pts[0], pts[len(pts)-1],
			"%s: closure is a flag, not a duplicated endpoint", name)
	}
}

// TestConstructors_DefaultAndValidation verifies the n == 0 default
// and the minimum point count.
func TestConstructors_DefaultAndValidation(t *testing.T) {
	c, err := knots.Trefoil(0)
	require.NoError(t, err)
	assert.Equal(t, knots.DefaultNumPoints, c.Len())

	_, err = knots.Trefoil(2)
	assert.ErrorIs(t, err, knots.ErrTooFewPoints)
	_, err = knots.Lissajous(3, 2, 7, 0, 0, 0, -5)
	assert.ErrorIs(t, err, knots.ErrTooFewPoints)
}

// TestConstructors_Deterministic verifies that the same arguments
// always produce the same curve.
func TestConstructors_Deterministic(t *testing.T) {
	a, err := knots.FigureEight(40)
	require.NoError(t, err)
	b, err := knots.FigureEight(40)
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())
}

// TestTrefoil_ClosesSmoothly verifies that the closing segment is no
// longer than the longest sampled segment — i.e. the sampling really
// wraps around.
func TestTrefoil_ClosesSmoothly(t *testing.T) {
	c, err := knots.Trefoil(200)
	require.NoError(t, err)

	lengths := c.SegmentLengths()
	require.Len(t, lengths, 200)
	closing := lengths[len(lengths)-1]
	assert.LessOrEqual(t, closing, c.MaxSegmentLength())
	assert.Greater(t, closing, 0.0)
}
