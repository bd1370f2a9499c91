package crossings

import (
	"github.com/katalvlaran/knotkit/spacecurve"
)

// Self finds every self-crossing of the curve viewed along +z.
//
// Each curve segment is swept against the sub-curve starting two
// segments ahead, so adjacent segments (which share an endpoint and
// cannot cross transversally) are never tested. For a closed curve
// the implicit closing segment participates like any other, excluding
// its own two neighbours.
//
// The result contains the symmetric record pair for every geometric
// crossing, in scan order. Curves too short to self-intersect in
// projection yield an empty result, not an error.
//
// Returns ErrBadJumpMode for an unknown Options.Mode.
//
// Complexity: better than O(n²) for well-behaved curves under the
// jumping modes; O(n²) under JumpNone.
func Self(c spacecurve.Curve, opts Options) ([]Crossing, error) {
	switch opts.Mode {
	case JumpDistance, JumpMaxLength, JumpNone:
	default:
		return nil, ErrBadJumpMode
	}

	pts := c.Points()
	segLengths := spacecurve.SegmentLengths(pts, c.Closed())

	// A closed curve is scanned as the open polyline with its first
	// point appended, making the closing segment explicit.
	if c.Closed() {
		pts = append(pts, pts[0])
	}
	if len(pts) < 4 {
		return nil, nil
	}

	var maxSeg float64
	for _, l := range segLengths {
		if l > maxSeg {
			maxSeg = l
		}
	}

	nseg := len(pts) - 1
	var out []Crossing
	for i := 0; i < nseg-1; i++ {
		v := pts[i]
		dv := pts[i+1].Sub(v)

		// Candidate segments i+2 … last, where last is the final
		// segment — except for segment 0 of a closed curve, whose
		// other neighbour is the closing segment itself.
		last := nseg - 1
		if c.Closed() && i == 0 {
			last = nseg - 2
		}
		if i+2 > last {
			continue
		}

		recs := Find(v, dv, pts[i+2:last+2], segLengths[i+2:],
			float64(i), float64(i+2), maxSeg, opts.Mode)
		out = append(out, recs...)
	}
	return out, nil
}
