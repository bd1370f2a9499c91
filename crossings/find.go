package crossings

import (
	"math"

	"github.com/katalvlaran/knotkit/geom"
)

// Find returns every crossing between the segment (v, v+dv) and the
// segments of the candidate polyline points, viewed along +z.
//
// Contracts:
//   - points holds the candidate polyline; x,y are projection-plane
//     coordinates and z is the retained height. Candidate segment j
//     joins points[j] to points[j+1].
//   - segLengths[j] is the planar-bounded length of candidate segment
//     j; len(segLengths) ≥ len(points)−1. Only JumpDistance reads it.
//   - currentIdx and comparisonIdx offset the emitted fractional
//     indices onto the caller's curve numbering: the record for a hit
//     at parameters (t, u) on candidate j reads (currentIdx+t,
//     comparisonIdx+j+u).
//   - maxSegLength bounds every segment length of the curve; the
//     pruning condition "planar distance < 2·maxSegLength" is
//     necessary for any intersection under that bound.
//   - The caller excludes adjacent/self segments via the slice it
//     passes; Find itself never skips candidates for adjacency.
//
// Each geometric crossing emits the symmetric pair described on
// Crossing, in scan order.
//
// Complexity: sub-quadratic across a full curve pass for well-behaved
// curves under JumpDistance/JumpMaxLength; O(len(points)) tests here
// in the worst case, every candidate tested under JumpNone.
func Find(v, dv geom.Vec3, points []geom.Vec3, segLengths []float64,
	currentIdx, comparisonIdx float64, maxSegLength float64, mode JumpMode) []Crossing {

	var out []Crossing

	vXY := v.XY()
	dvXY := dv.XY()
	twiceMax := 2 * maxSegLength

	i := 0
	alreadyJumped := false
	for i < len(points)-1 {
		point := points[i]
		distance := v.PlanarDistance(point)

		if distance < twiceMax || alreadyJumped {
			// Close enough (or just landed from a jump): run the full
			// intersection test against candidate segment i.
			alreadyJumped = false
			jump := points[i+1].Sub(point)

			if hit, ok := geom.SegmentIntersection(vXY, dvXY, point.XY(), jump.XY()); ok {
				// Interpolate each strand's height at the crossing; the
				// z-difference decides over/under, the projected cross
				// product the handedness.
				sign := geom.Sign((v.Z + hit.T*dv.Z) - (point.Z + hit.U*jump.Z))
				hand := sign * geom.Sign(dvXY.Cross(jump.XY()))

				a := currentIdx + hit.T
				b := comparisonIdx + float64(i) + hit.U
				out = append(out,
					Crossing{A: a, B: b, Sign: sign, Type: hand},
					Crossing{A: b, B: a, Sign: -sign, Type: hand},
				)
			}
			i++
			continue
		}

		switch mode {
		case JumpNone:
			i++
		case JumpMaxLength:
			n := int(math.Floor(distance/maxSegLength)) - 1
			if n < 1 {
				n = 1
			}
			i += n
		default: // JumpDistance
			// Walk real segment lengths until they could have closed the
			// gap, then back off 2: the empirical margin against
			// overshooting a crossing just inside the pruning radius.
			var travelled float64
			jumps := 0
			for travelled < distance-maxSegLength && i < len(segLengths) {
				jumps++
				travelled += segLengths[i]
				i++
			}
			if jumps > 1 {
				i -= 2
			}
		}
		// The position we jumped to is always tested, whatever its
		// pruning distance says.
		alreadyJumped = true
	}

	return out
}
