package geom

import "math"

// ParallelTol is the fixed tolerance on the scalar cross product of two
// segment displacements below which the segments are declared parallel
// and never intersecting. Near-tangent pairs under this tolerance are a
// documented source of missed crossings for degenerate input; the bias
// is deliberately conservative.
const ParallelTol = 1e-6

// Intersection reports where two segments cross, as fractional
// parameters along each segment's displacement vector.
type Intersection struct {
	// T is the fraction along the first segment (p, p+dp), in (0, 1).
	T float64
	// U is the fraction along the second segment (q, q+dq), in (0, 1).
	U float64
}

// SegmentIntersection tests whether the segments [p, p+dp] and
// [q, q+dq] cross strictly inside both, endpoints excluded.
//
// The test solves p + t·dp = q + u·dq by Cramer's rule. If the
// displacements are parallel within ParallelTol there is no solution
// and ok is false. Otherwise ok is true iff 0 < t < 1 and 0 < u < 1.
//
// When ok is false the returned Intersection is the zero value and
// must not be used.
//
// Complexity: O(1).
func SegmentIntersection(p, dp, q, dq Vec2) (Intersection, bool) {
	cross := dp.Cross(dq)
	if math.Abs(cross) < ParallelTol {
		return Intersection{}, false
	}

	pq := q.Sub(p)
	t := pq.Cross(dq) / cross
	if t <= 0 || t >= 1 {
		return Intersection{}, false
	}
	u := pq.Cross(dp) / cross
	if u <= 0 || u >= 1 {
		return Intersection{}, false
	}

	return Intersection{T: t, U: u}, true
}
