// Package invariants: input types and sentinel errors.
package invariants

import "errors"

// Sentinel errors for the invariant accumulators. Wrapped matrix
// sentinels (matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrAsymmetry, matrix.ErrNaNInf) surface unchanged from the
// contribution-matrix validators.
var (
	// ErrNoArrows indicates an empty arrow set.
	ErrNoArrows = errors.New("invariants: arrow set is empty")

	// ErrBadArrow indicates an arrow whose start or end index falls
	// outside [0, 2·len(arrows)), the crossing index range of a Gauss
	// diagram with that many arrows.
	ErrBadArrow = errors.New("invariants: arrow index out of range")

	// ErrTooFewPoints indicates a point count too small for quadruple
	// enumeration (n < 4 for basepoint sums, n < 2 without basepoint).
	ErrTooFewPoints = errors.New("invariants: too few points for quadruple sums")

	// ErrContributionShape indicates a contribution matrix too small
	// for the requested point count (needs at least (n−1)×(n−1)).
	ErrContributionShape = errors.New("invariants: contribution matrix too small for point count")

	// ErrBadOrder indicates a pairing order that is not a permutation
	// of {0, 1, 2, 3}.
	ErrBadOrder = errors.New("invariants: pairing order is not a permutation of 0..3")
)

// Arrow is a directed chord of a Gauss diagram: a crossing visited at
// position Start and again at position End along the curve, with the
// crossing's sign. Positions index the 2n crossing visits of an
// n-arrow diagram.
type Arrow struct {
	Start int
	End   int
	Sign  float64
}

// Writhe3 bundles the three second-order writhe sums: W1 pairs
// (i1,i2)·(i3,i4), W2 pairs (i1,i3)·(i2,i4), W3 pairs (i1,i4)·(i2,i3).
type Writhe3 struct {
	W1, W2, W3 float64
}
