// Package matrix provides the dense float64 matrix used as the
// contribution-matrix carrier for the writhe-family invariants, plus
// the validators that enforce its preconditions.
//
// 🚀 What lives here?
//
//   - Dense — a row-major float64 matrix with bounds-checked At/Set
//   - Validators — NotNil / Square / Symmetric / Finite checks that
//     return sentinel errors, so invariant kernels can fail fast before
//     entering their quartic loops
//
// ⚙️ Usage:
//
//	m, err := matrix.NewDense(6, 6)
//	if err != nil { … }
//	_ = m.Set(1, 2, 0.5)
//	_ = m.Set(2, 1, 0.5) // contribution matrices are symmetric
//
//	if err := matrix.ValidateSymmetric(m, matrix.DefaultEpsilon); err != nil {
//	  // errors.Is(err, matrix.ErrAsymmetry)
//	}
//
// Numeric policy:
//
//   - DefaultEpsilon (1e-9) bounds the tolerated asymmetry |a−aᵀ|.
//   - NaN and ±Inf are rejected by ValidateFinite; kernels must never
//     ingest them silently.
//
// All checks are pure and deterministic; the symmetry check touches the
// upper triangle only, O(n²).
package matrix
