// Package spacecurve: rotations for choosing projection directions.
//
// The writhe of a space curve is defined as an average of signed
// crossing counts over all viewing directions. These helpers supply
// the machinery: a near-uniform covering of the sphere by rotation
// angles, and rotation matrices that bring an arbitrary direction to
// the projection axis (+z).
package spacecurve

import (
	"math"

	"github.com/katalvlaran/knotkit/geom"
)

// Mat3 is a 3×3 rotation (or general linear) matrix in row-major order.
type Mat3 [3][3]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(v geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

// Transpose returns mᵀ, which for a rotation matrix is its inverse.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Rotated returns a new curve with every point transformed by m.
// Closedness is preserved. Complexity: O(n).
func (c Curve) Rotated(m Mat3) Curve {
	pts := make([]geom.Vec3, len(c.points))
	for i, p := range c.points {
		pts[i] = m.MulVec(p)
	}
	return Curve{points: pts, closed: c.closed}
}

// SphereAngle is a (theta, phi) direction on the unit sphere:
// theta is the polar (latitudinal) angle, phi the azimuthal one.
type SphereAngle struct {
	Theta, Phi float64
}

// RotationAngles returns n directions approximately evenly distributed
// on the sphere, using the generalised spiral points of Saff &
// Kuijlaars (The Mathematical Intelligencer 19(1), 1997). Used to
// average projection-dependent quantities over viewing directions.
// n must be at least 2; smaller inputs yield a single pole direction.
// Complexity: O(n).
func RotationAngles(n int) []SphereAngle {
	if n < 2 {
		return []SphereAngle{{Theta: math.Pi, Phi: 0}}
	}
	angles := make([]SphereAngle, n)
	angles[0] = SphereAngle{Theta: math.Pi, Phi: 0}
	for k := 2; k <= n; k++ {
		h := -1 + 2*float64(k-1)/float64(n-1)
		theta := math.Acos(h)
		phi := 0.0
		if h*h < 1 { // the final point has h=1; its phi is pinned to 0 below
			phi = math.Mod(angles[k-2].Phi+3.6/math.Sqrt(float64(n))/math.Sqrt(1-h*h), 2*math.Pi)
		}
		angles[k-1] = SphereAngle{Theta: theta, Phi: phi}
	}
	angles[n-1].Phi = 0
	return angles
}

// RotateToTop returns the rotation matrix that brings the sphere
// position (theta, phi) to the top (+z), so that projecting along z
// afterwards views the curve from that direction.
func RotateToTop(theta, phi float64) Mat3 {
	chi := -phi
	alpha := theta

	cc, sc := math.Cos(chi), math.Sin(chi)
	ca, sa := math.Cos(alpha), math.Sin(alpha)

	first := Mat3{
		{cc, -sc, 0},
		{sc, cc, 0},
		{0, 0, 1},
	}
	second := Mat3{
		{ca, 0, -sa},
		{0, 1, 0},
		{sa, 0, ca},
	}
	return second.Mul(first)
}

// RotateVectorToTop returns the rotation matrix that points the given
// vector upwards (+z).
func RotateVectorToTop(v geom.Vec3) Mat3 {
	theta := math.Acos(v.Z / v.Length())
	phi := math.Atan2(v.Y, v.X)
	return RotateToTop(theta, phi)
}

// RotateAxisAngle returns the matrix rotating by angle (radians)
// around the given axis, which need not be normalised.
func RotateAxisAngle(axis geom.Vec3, angle float64) Mat3 {
	u := axis.Normalize()
	ct, st := math.Cos(angle), math.Sin(angle)
	omc := 1 - ct
	return Mat3{
		{ct + u.X*u.X*omc, u.X*u.Y*omc - u.Z*st, u.X*u.Z*omc + u.Y*st},
		{u.Y*u.X*omc + u.Z*st, ct + u.Y*u.Y*omc, u.Y*u.Z*omc - u.X*st},
		{u.Z*u.X*omc - u.Y*st, u.Z*u.Y*omc + u.X*st, ct + u.Z*u.Z*omc},
	}
}
