// SPDX-License-Identifier: MIT
// Package: knotkit/knots
//
// knots.go — the named-knot constructor family.
//
// Contract:
//   • n ≥ MinPoints (else ErrTooFewPoints); n == 0 means DefaultNumPoints.
//   • Points are sampled at t = 2πk/n for k = 0..n−1 (endpoint excluded).
//   • Every constructor returns a closed curve; never panics.
//
// Complexity:
//   • Time: O(n) per constructor. Space: O(n).

package knots

import (
	"errors"
	"math"

	"github.com/katalvlaran/knotkit/geom"
	"github.com/katalvlaran/knotkit/spacecurve"
)

// ErrTooFewPoints indicates a requested point count below MinPoints.
var ErrTooFewPoints = errors.New("knots: point count too small")

const (
	// DefaultNumPoints is used when a constructor receives n == 0.
	DefaultNumPoints = 100

	// MinPoints is the smallest closed sample accepted. Below this a
	// knot parametrisation cannot even close into a polygon.
	MinPoints = 3
)

// sample evaluates f at n points evenly spread over [0, 2π), endpoint
// excluded, and wraps them into a closed curve.
func sample(n int, f func(t float64) geom.Vec3) (spacecurve.Curve, error) {
	if n == 0 {
		n = DefaultNumPoints
	}
	if n < MinPoints {
		return spacecurve.Curve{}, ErrTooFewPoints
	}
	pts := make([]geom.Vec3, n)
	step := 2 * math.Pi / float64(n)
	for k := 0; k < n; k++ {
		pts[k] = f(float64(k) * step)
	}
	return spacecurve.New(pts, spacecurve.WithClosed())
}

// Unknot returns a trivially knotted circle with a small z ripple.
func Unknot(n int) (spacecurve.Curve, error) {
	return sample(n, func(t float64) geom.Vec3 {
		return geom.V3(3*math.Sin(t), 3*math.Cos(t), math.Sin(3*t))
	})
}

// Trefoil returns a particular conformation of the trefoil knot 3_1,
// as the (2,3) torus parametrisation.
func Trefoil(n int) (spacecurve.Curve, error) {
	return sample(n, func(t float64) geom.Vec3 {
		r := 2 + math.Cos(3*t)
		return geom.V3(r*math.Cos(2*t), r*math.Sin(2*t), math.Sin(3*t))
	})
}

// FigureEight returns a conformation of the figure-eight knot 4_1.
func FigureEight(n int) (spacecurve.Curve, error) {
	return sample(n, func(t float64) geom.Vec3 {
		r := 2 + math.Cos(2*t)
		return geom.V3(r*math.Cos(3*t), r*math.Sin(3*t), math.Sin(4*t))
	})
}

// Lissajous returns the Lissajous knot with frequencies (nx, ny, nz)
// and phases (px, py, pz).
func Lissajous(nx, ny, nz int, px, py, pz float64, n int) (spacecurve.Curve, error) {
	fx, fy, fz := float64(nx), float64(ny), float64(nz)
	return sample(n, func(t float64) geom.Vec3 {
		return geom.V3(
			math.Cos(fx*t+px),
			math.Cos(fy*t+py),
			math.Cos(fz*t+pz),
		)
	})
}

// ThreeTwist returns a Lissajous conformation of the knot 5_2.
func ThreeTwist(n int) (spacecurve.Curve, error) {
	return Lissajous(3, 2, 7, 0.7, 0.2, 0, n)
}

// Stevedore returns a Lissajous conformation of the knot 6_1.
func Stevedore(n int) (spacecurve.Curve, error) {
	return Lissajous(3, 2, 5, 1.5, 0.2, 0, n)
}

// DoubleTrefoil returns a Lissajous conformation of the composite
// knot 3_1 # 3_1.
func DoubleTrefoil(n int) (spacecurve.Curve, error) {
	return Lissajous(3, 5, 7, 0.7, 1, 0, n)
}

// K8_21 returns a Lissajous conformation of the knot 8_21.
func K8_21(n int) (spacecurve.Curve, error) {
	return Lissajous(3, 4, 7, 0.1, 0.7, 0, n)
}
