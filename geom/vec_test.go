package geom_test

import (
	"testing"

	"github.com/katalvlaran/knotkit/geom"
	"github.com/stretchr/testify/assert"
)

// TestVec2_CrossOrientation verifies that the scalar cross product
// encodes turn orientation: positive for a left turn, negative for a
// right turn, zero for colinear vectors.
func TestVec2_CrossOrientation(t *testing.T) {
	x := geom.V2(1, 0)
	y := geom.V2(0, 1)

	assert.Equal(t, 1.0, x.Cross(y), "x into y is a left turn")
	assert.Equal(t, -1.0, y.Cross(x), "y into x is a right turn")
	assert.Equal(t, 0.0, x.Cross(geom.V2(3, 0)), "colinear vectors have zero cross")
}

// TestVec3_CrossRightHanded verifies the right-hand rule on the
// standard basis.
func TestVec3_CrossRightHanded(t *testing.T) {
	x := geom.V3(1, 0, 0)
	y := geom.V3(0, 1, 0)

	assert.Equal(t, geom.V3(0, 0, 1), x.Cross(y), "x × y = z")
	assert.Equal(t, geom.V3(0, 0, -1), y.Cross(x), "y × x = −z")
}

// TestVec3_NormalizeZero verifies that the zero vector normalizes to
// the zero vector instead of NaN.
func TestVec3_NormalizeZero(t *testing.T) {
	assert.Equal(t, geom.Vec3{}, geom.Vec3{}.Normalize())
}

// TestVec3_Lerp verifies endpoint and midpoint interpolation.
func TestVec3_Lerp(t *testing.T) {
	a := geom.V3(0, 0, 0)
	b := geom.V3(2, 4, 6)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, geom.V3(1, 2, 3), a.Lerp(b, 0.5))
}

// TestVec3_PlanarDistance verifies that z is ignored by the projection
// metric.
func TestVec3_PlanarDistance(t *testing.T) {
	a := geom.V3(0, 0, -100)
	b := geom.V3(3, 4, 100)

	assert.Equal(t, 5.0, a.PlanarDistance(b))
}

// TestSign covers the three branches.
func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, geom.Sign(0.25))
	assert.Equal(t, -1.0, geom.Sign(-1e-12))
	assert.Equal(t, 0.0, geom.Sign(0))
}
