// Package spacecurve: the Curve type, its constructor options and
// sentinel errors.
package spacecurve

import (
	"errors"

	"github.com/katalvlaran/knotkit/geom"
)

// Sentinel errors for spacecurve operations.
var (
	// ErrTooFewPoints indicates a curve with fewer than MinPoints points.
	ErrTooFewPoints = errors.New("spacecurve: curve needs at least 2 points")
)

// MinPoints is the minimum number of points a Curve may hold.
// Degenerate single-point or empty curves fail fast rather than produce
// a silent zero result.
const MinPoints = 2

// Curve is an ordered sequence of 3D points with an explicit
// closedness flag. A closed curve's last point connects back to its
// first by an implicit closing segment. Curves are immutable: New
// copies its input, and Points returns a fresh copy.
type Curve struct {
	points []geom.Vec3
	closed bool
}

// Option configures a Curve at construction time.
type Option func(*Curve)

// WithClosed marks the curve as closed: the final point is joined back
// to the first by an implicit segment.
func WithClosed() Option {
	return func(c *Curve) { c.closed = true }
}

// New constructs a Curve from the given points.
// The slice is copied; the caller keeps ownership of its argument.
// Returns ErrTooFewPoints for fewer than MinPoints points.
// Complexity: O(n).
func New(points []geom.Vec3, opts ...Option) (Curve, error) {
	if len(points) < MinPoints {
		return Curve{}, ErrTooFewPoints
	}
	c := Curve{points: make([]geom.Vec3, len(points))}
	copy(c.points, points)
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// Len returns the number of points in the curve. Complexity: O(1).
func (c Curve) Len() int { return len(c.points) }

// Closed reports whether the curve carries the closed flag.
func (c Curve) Closed() bool { return c.closed }

// Points returns a copy of the curve's points. Complexity: O(n).
func (c Curve) Points() []geom.Vec3 {
	out := make([]geom.Vec3, len(c.points))
	copy(out, c.points)
	return out
}

// At returns the i-th point. The index is taken modulo the curve
// length for closed curves, so At(Len()) is the first point again;
// for open curves it must be in range.
func (c Curve) At(i int) geom.Vec3 {
	if c.closed {
		i %= len(c.points)
		if i < 0 {
			i += len(c.points)
		}
	}
	return c.points[i]
}

// Scaled returns a new curve with every point scaled by k about the
// origin. Closedness is preserved. Complexity: O(n).
func (c Curve) Scaled(k float64) Curve {
	pts := make([]geom.Vec3, len(c.points))
	for i, p := range c.points {
		pts[i] = p.Scale(k)
	}
	return Curve{points: pts, closed: c.closed}
}

// Translated returns a new curve with v added to every point.
// Complexity: O(n).
func (c Curve) Translated(v geom.Vec3) Curve {
	pts := make([]geom.Vec3, len(c.points))
	for i, p := range c.points {
		pts[i] = p.Add(v)
	}
	return Curve{points: pts, closed: c.closed}
}
