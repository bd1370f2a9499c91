// Package invariants computes scalar knot invariants by combinatorial
// summation over crossing-derived data: the degree-3 Vassiliev
// invariant from arrow (Gauss-diagram) data, and the writhe family
// from a pairwise contribution matrix.
//
// 🚀 What lives here?
//
//   - VassilievDegree3 — iterate ordered arrow triples in a cyclic
//     coordinate frame, dedupe unordered triples, combine two
//     accumulators into the degree-3 finite-type invariant
//   - SecondOrderWrithe — the three quadruple sums (12·34, 13·24,
//     14·23) over strictly increasing index quadruples, normalised
//     by (2π)²
//   - SecondOrderWritheNoBasepoint — the same sums over all cyclic
//     quadruples, removing the artificial choice of a basepoint on a
//     closed curve
//   - HigherOrderWrithe — the quadruple sum with a caller-supplied
//     pairing permutation, for degree-4-and-above members of the
//     family
//
// ⚙️ Usage:
//
//	contrib, _ := matrix.NewDenseFrom(rows) // symmetric n−1 × n−1
//	w, err := invariants.SecondOrderWrithe(contrib, n)
//	if err != nil {
//	  // errors.Is against the sentinels in types.go / package matrix
//	}
//	fmt.Println(w.W1, w.W2, w.W3)
//
// ⚠️ Cost: every writhe variant enumerates index quadruples — O(n⁴)
// by mathematical definition, not implementation accident. Choose the
// curve resolution accordingly; there is no cheaper fallback path,
// and inputs are validated fully before the loops start so failures
// never burn quartic time.
//
// Inputs are consumed read-only; results are plain scalars. Arrow and
// contribution-matrix construction from raw crossing records is the
// caller's responsibility — this package only enforces their shape.
package invariants
