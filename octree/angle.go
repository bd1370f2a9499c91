package octree

import (
	"math"

	"github.com/katalvlaran/knotkit/geom"
)

// DefaultAngleBudget is the default winding budget for AngleExceeds,
// in the clipped-cosine units the test accumulates.
const DefaultAngleBudget = 2 * math.Pi

// AngleExceeds reports whether the accumulated turning cost along ps
// surpasses budget. The cost of each step is the dot product of the
// two consecutive unit direction vectors, clipped to [0, 1]; comparing
// these cosines instead of calling into inverse trig keeps the test
// cheap enough to run on every candidate sub-line.
//
// With includeClosure the directions closing the last point back to
// the first are included in the walk.
//
// A NaN step — produced by a zero-length segment — returns true
// immediately. That is a deliberate conservative fail-safe: a
// degenerate sub-line is never treated as straight.
//
// Fewer than 3 points (2 without closure) have nothing to turn through
// and always return false.
//
// Complexity: O(n).
func AngleExceeds(ps []geom.Vec3, budget float64, includeClosure bool) bool {
	if len(ps) < 2 {
		return false
	}

	checks := len(ps) - 2
	if includeClosure {
		checks = len(ps)
	}
	if checks <= 0 {
		return false
	}

	// Direction vectors are normalised by explicit division rather than
	// geom.Vec3.Normalize: a zero-length segment must surface as NaN
	// here so the fail-safe below fires.
	n := len(ps)
	prev := ps[1].Sub(ps[0]).Scale(1 / ps[1].Sub(ps[0]).Length())

	var angle float64
	for i := 0; i < checks; i++ {
		a := ps[(i+1)%n]
		b := ps[(i+2)%n]
		next := b.Sub(a)
		next = next.Scale(1 / next.Length())

		cost := prev.Dot(next)
		if cost > 1 {
			cost = 1
		} else if cost < 0 {
			cost = 0
		}
		if math.IsNaN(cost) {
			return true
		}
		angle += cost
		if angle > budget {
			return true
		}
		prev = next
	}
	return math.IsNaN(angle)
}
