package invariants

import (
	"math"

	"github.com/katalvlaran/knotkit/matrix"
)

// validateContribution runs the full precondition chain on a
// contribution matrix before any quartic loop is entered: non-nil,
// square, finite, symmetric within matrix.DefaultEpsilon, and large
// enough to index the n−1 segment rows.
func validateContribution(contrib *matrix.Dense, n int) error {
	if err := matrix.ValidateNotNil(contrib); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(contrib); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(contrib); err != nil {
		return err
	}
	if err := matrix.ValidateSymmetric(contrib, matrix.DefaultEpsilon); err != nil {
		return err
	}
	if contrib.Rows() < n-1 {
		return ErrContributionShape
	}
	return nil
}

// lookup adapts a validated Dense to unchecked reads for the hot
// loops below. The shape was validated once up front; per-element
// error handling inside an O(n⁴) loop would dominate its cost.
func lookup(contrib *matrix.Dense) func(i, j int) float64 {
	data := contrib.Raw()
	stride := contrib.Cols()
	return func(i, j int) float64 { return data[i*stride+j] }
}

// twoPiSquared is the (2π)² normalisation of the second-order sums.
var twoPiSquared = math.Pow(2*math.Pi, 2)

// SecondOrderWrithe computes the three second-order writhe sums of a
// curve of n points with a fixed basepoint: every strictly increasing
// quadruple i1<i2<i3<i4 drawn from the first n−1 indices contributes
// its three pairwise products, and each sum is normalised by (2π)².
//
// Errors: ErrTooFewPoints for n < 4; contribution-matrix sentinels
// from package matrix; ErrContributionShape when the matrix cannot
// index n−1 segments.
//
// Complexity: O(n⁴) — inherent to the definition, not an
// implementation artifact. Validate curve resolution accordingly.
func SecondOrderWrithe(contrib *matrix.Dense, n int) (Writhe3, error) {
	if n < 4 {
		return Writhe3{}, ErrTooFewPoints
	}
	if err := validateContribution(contrib, n); err != nil {
		return Writhe3{}, err
	}
	at := lookup(contrib)

	var w Writhe3
	var i1, i2, i3, i4 int
	for i1 = 0; i1 < n-3; i1++ {
		for i2 = i1 + 1; i2 < n-1; i2++ {
			for i3 = i2 + 1; i3 < n-1; i3++ {
				for i4 = i3 + 1; i4 < n-1; i4++ {
					w.W1 += at(i1, i2) * at(i3, i4)
					w.W2 += at(i1, i3) * at(i2, i4)
					w.W3 += at(i1, i4) * at(i2, i3)
				}
			}
		}
	}
	w.W1 /= twoPiSquared
	w.W2 /= twoPiSquared
	w.W3 /= twoPiSquared
	return w, nil
}

// SecondOrderWritheNoBasepoint computes the same three sums over all
// cyclic quadruples: index ranges wrap around modulo n instead of
// growing from a fixed start, so the result does not depend on where
// the closed curve's point numbering begins.
//
// The enumeration follows nested range unions: for each i1, the later
// indices first run up the remaining forward range and then wrap into
// [0, i1); once an index has wrapped, its successors stay below i1.
//
// Errors: as SecondOrderWrithe, with ErrTooFewPoints for n < 2.
//
// Complexity: O(n⁴).
func SecondOrderWritheNoBasepoint(contrib *matrix.Dense, n int) (Writhe3, error) {
	if n < 2 {
		return Writhe3{}, ErrTooFewPoints
	}
	if err := validateContribution(contrib, n); err != nil {
		return Writhe3{}, err
	}
	at := lookup(contrib)

	var w Writhe3
	accumulate := func(i1, i2, i3, i4 int) {
		w.W1 += at(i1, i2) * at(i3, i4)
		w.W2 += at(i1, i3) * at(i2, i4)
		w.W3 += at(i1, i4) * at(i2, i3)
	}

	var i1, i2, i3, i4 int
	for i1 = 0; i1 < n-1; i1++ {
		forI4 := func(i2, i3 int) {
			if i3 > i1 {
				for i4 = i3 + 1; i4 < n-1; i4++ {
					accumulate(i1, i2, i3, i4)
				}
				for i4 = 0; i4 < i1; i4++ {
					accumulate(i1, i2, i3, i4)
				}
			} else {
				for i4 = i3 + 1; i4 < i1; i4++ {
					accumulate(i1, i2, i3, i4)
				}
			}
		}

		for i2 = i1 + 1; i2 < n-1; i2++ {
			for i3 = i2 + 1; i3 < n-1; i3++ {
				forI4(i2, i3)
			}
			for i3 = 0; i3 < i1; i3++ {
				forI4(i2, i3)
			}
		}
		for i2 = 0; i2 < i1; i2++ {
			for i3 = i2 + 1; i3 < i1; i3++ {
				forI4(i2, i3)
			}
		}
	}

	w.W1 /= twoPiSquared
	w.W2 /= twoPiSquared
	w.W3 /= twoPiSquared
	return w, nil
}

// HigherOrderWrithe computes the quadruple sum with a caller-supplied
// pairing order: for every strictly increasing quadruple, the product
// of the two contribution lookups indexed by the given permutation of
// the quadruple's four positions. Different permutations yield the
// degree-4-and-above members of the writhe family. The raw sum is
// returned without normalisation.
//
// Errors: ErrBadOrder when order is not a permutation of {0,1,2,3};
// otherwise as SecondOrderWrithe.
//
// Complexity: O(n⁴).
func HigherOrderWrithe(contrib *matrix.Dense, n int, order [4]int) (float64, error) {
	var seen [4]bool
	for _, o := range order {
		if o < 0 || o > 3 || seen[o] {
			return 0, ErrBadOrder
		}
		seen[o] = true
	}
	if n < 4 {
		return 0, ErrTooFewPoints
	}
	if err := validateContribution(contrib, n); err != nil {
		return 0, err
	}
	at := lookup(contrib)

	var writhe float64
	var idx [4]int
	for idx[0] = 0; idx[0] < n-3; idx[0]++ {
		for idx[1] = idx[0] + 1; idx[1] < n-1; idx[1]++ {
			for idx[2] = idx[1] + 1; idx[2] < n-1; idx[2]++ {
				for idx[3] = idx[2] + 1; idx[3] < n-1; idx[3]++ {
					writhe += at(idx[order[0]], idx[order[1]]) * at(idx[order[2]], idx[order[3]])
				}
			}
		}
	}
	return writhe, nil
}
