// Package crossings: record type, jump modes, options and sentinels.
package crossings

import "errors"

// Sentinel errors for crossing detection.
var (
	// ErrBadJumpMode indicates an unknown JumpMode value in Options.
	ErrBadJumpMode = errors.New("crossings: unknown jump mode")
)

// JumpMode selects the skip policy the finder applies to candidate
// segments that are too far away to intersect the current one.
type JumpMode int

const (
	// JumpDistance accumulates real segment lengths until the distance
	// gap is closed, then backs off by 2 to avoid overshooting a true
	// crossing near the boundary. Default.
	JumpDistance JumpMode = iota + 1

	// JumpMaxLength advances floor(distance/maxSegmentLength)−1
	// positions (at least 1): cheaper, assumes near-uniform segments.
	JumpMaxLength

	// JumpNone never skips; every segment is tested. The quadratic
	// correctness baseline, for verification rather than production.
	JumpNone
)

// Crossing is one half of a symmetric crossing-record pair.
//
// A and B are fractional indices: integer segment index plus the
// fractional position of the crossing within that segment. A indexes
// the strand the record belongs to, B the other strand. Sign is +1
// when strand A passes over strand B, −1 when under. Type encodes the
// handedness of the crossing: Sign times the sign of the projected
// cross product of the two strand directions; it is identical on both
// records of a pair.
type Crossing struct {
	A    float64
	B    float64
	Sign float64
	Type float64
}

// Options configures Self, the whole-curve scanner.
//
// Fields:
//   - Mode — the jump policy (default JumpDistance).
//
// Example:
//
//	opts := crossings.DefaultOptions()
//	opts.Mode = crossings.JumpNone // exact, quadratic
//	recs, err := crossings.Self(curve, opts)
type Options struct {
	Mode JumpMode
}

// DefaultOptions returns the production defaults: JumpDistance.
func DefaultOptions() Options {
	return Options{Mode: JumpDistance}
}
