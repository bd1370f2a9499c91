// Package spacecurve: geometric measures of piecewise-linear curves.
//
// The free functions operate on raw point slices with an explicit
// closure flag, mirroring the Curve methods, so callers that have not
// (or cannot have) built a Curve — e.g. sub-lines emitted by the
// octree partitioner — get the same semantics.
package spacecurve

import (
	"math"

	"github.com/katalvlaran/knotkit/geom"
)

// SegmentLengths returns the Euclidean length of each segment joining
// a point to the next. With includeClosure the final entry is the
// closing segment from the last point back to the first, giving
// len(points) entries; without it there are len(points)−1.
// Fewer than 2 points yield an empty slice.
// Complexity: O(n).
func SegmentLengths(points []geom.Vec3, includeClosure bool) []float64 {
	if len(points) < 2 {
		return nil
	}
	n := len(points) - 1
	if includeClosure {
		n = len(points)
	}
	lengths := make([]float64, n)
	for i := 0; i < len(points)-1; i++ {
		lengths[i] = points[i].Distance(points[i+1])
	}
	if includeClosure {
		lengths[len(points)-1] = points[len(points)-1].Distance(points[0])
	}
	return lengths
}

// Arclength returns the total length of the piecewise-linear curve.
// Fewer than 2 points have arclength 0 by convention. With
// includeClosure the closing segment is counted too: a 2-point curve
// then measures twice its single segment.
// Complexity: O(n).
func Arclength(points []geom.Vec3, includeClosure bool) float64 {
	var total float64
	for _, l := range SegmentLengths(points, includeClosure) {
		total += l
	}
	return total
}

// RadiusOfGyration returns the root-mean-square distance of the points
// from their centroid, weighting every point equally and ignoring the
// connecting segments.
// Complexity: O(n).
func RadiusOfGyration(points []geom.Vec3) float64 {
	if len(points) == 0 {
		return 0
	}
	var centroid geom.Vec3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	var sum float64
	for _, p := range points {
		d := p.Sub(centroid)
		sum += d.Dot(d)
	}
	return math.Sqrt(sum / float64(len(points)))
}

// SegmentLengths returns the length of each curve segment, including
// the closing segment iff the curve is closed.
func (c Curve) SegmentLengths() []float64 {
	return SegmentLengths(c.points, c.closed)
}

// MaxSegmentLength returns the longest segment length, the bound the
// crossing finder's pruning heuristic relies on.
// Complexity: O(n).
func (c Curve) MaxSegmentLength() float64 {
	var max float64
	for _, l := range c.SegmentLengths() {
		if l > max {
			max = l
		}
	}
	return max
}

// Arclength returns the curve's total length. includeClosure counts
// the closing segment regardless of the curve's closed flag, matching
// the free function's convention.
func (c Curve) Arclength(includeClosure bool) float64 {
	return Arclength(c.points, includeClosure)
}

// RadiusOfGyration returns the rms distance of the curve's points from
// their centroid.
func (c Curve) RadiusOfGyration() float64 {
	return RadiusOfGyration(c.points)
}

// ProjectXY projects the curve along the z axis: the xy coordinates of
// every point, plus the z coordinates kept alongside so over/under
// information survives the projection.
// Complexity: O(n).
func (c Curve) ProjectXY() ([]geom.Vec2, []float64) {
	xy := make([]geom.Vec2, len(c.points))
	z := make([]float64, len(c.points))
	for i, p := range c.points {
		xy[i] = p.XY()
		z[i] = p.Z
	}
	return xy, z
}
