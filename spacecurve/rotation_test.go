package spacecurve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/knotkit/geom"
	"github.com/katalvlaran/knotkit/spacecurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrthogonal checks RᵀR = I within tolerance.
func assertOrthogonal(t *testing.T, m spacecurve.Mat3) {
	t.Helper()
	p := m.Transpose().Mul(m)
	id := spacecurve.Identity3()
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			assert.InDelta(t, id[i][j], p[i][j], 1e-12, "RᵀR must be the identity")
		}
	}
}

// TestRotateVectorToTop verifies that the produced rotation really
// sends the requested direction to +z, and is orthogonal.
func TestRotateVectorToTop(t *testing.T) {
	for _, v := range []geom.Vec3{
		{X: 1}, {Y: 2}, {Z: 3}, {X: 1, Y: 1, Z: 1}, {X: -2, Y: 0.5, Z: -1},
	} {
		m := spacecurve.RotateVectorToTop(v)
		assertOrthogonal(t, m)

		up := m.MulVec(v)
		assert.InDelta(t, 0, up.X, 1e-12)
		assert.InDelta(t, 0, up.Y, 1e-12)
		assert.InDelta(t, v.Length(), up.Z, 1e-12, "length is preserved and points up")
	}
}

// TestRotateAxisAngle verifies a quarter turn about z and axis
// invariance.
func TestRotateAxisAngle(t *testing.T) {
	m := spacecurve.RotateAxisAngle(geom.V3(0, 0, 2), math.Pi/2)
	assertOrthogonal(t, m)

	got := m.MulVec(geom.V3(1, 0, 0))
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)

	axis := m.MulVec(geom.V3(0, 0, 5))
	assert.InDelta(t, 5, axis.Z, 1e-12, "the axis itself is fixed")
}

// TestRotationAngles_SphereCover verifies the spiral-points output:
// endpoints at the poles, thetas in range, phis finite.
func TestRotationAngles_SphereCover(t *testing.T) {
	const n = 50
	angles := spacecurve.RotationAngles(n)
	require.Len(t, angles, n)

	assert.InDelta(t, math.Pi, angles[0].Theta, 1e-12, "first direction is the south pole")
	assert.InDelta(t, 0, angles[n-1].Theta, 1e-12, "last direction is the north pole")
	assert.Equal(t, 0.0, angles[n-1].Phi, "last phi is pinned to 0")

	for _, a := range angles {
		assert.False(t, math.IsNaN(a.Theta) || math.IsInf(a.Theta, 0))
		assert.False(t, math.IsNaN(a.Phi) || math.IsInf(a.Phi, 0))
		assert.GreaterOrEqual(t, a.Theta, 0.0)
		assert.LessOrEqual(t, a.Theta, math.Pi)
	}
}

// TestCurve_RotatedPreservesGeometry verifies that rotation preserves
// arclength and closedness.
func TestCurve_RotatedPreservesGeometry(t *testing.T) {
	pts := []geom.Vec3{{}, {X: 1, Y: 2}, {X: 3, Z: -1}, {Y: 4}}
	c, err := spacecurve.New(pts, spacecurve.WithClosed())
	require.NoError(t, err)

	r := c.Rotated(spacecurve.RotateAxisAngle(geom.V3(1, 1, 0), 1.1))
	assert.True(t, r.Closed())
	assert.InEpsilon(t, c.Arclength(true), r.Arclength(true), 1e-12)
}
