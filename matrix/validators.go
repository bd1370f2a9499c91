// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep invariant kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return plain sentinel errors (wrapped only with the validator tag) so call
//    sites can branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (compose with ValidateNotNil).
// Returns ErrNonSquare on violation. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateSymmetric checks |m[i][j] − m[j][i]| ≤ eps for all i < j.
// Assumes m is not nil and square (compose with the checks above).
// Returns ErrAsymmetry on the first violating pair. Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if math.Abs(m.at(i, j)-m.at(j, i)) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}
	return nil
}

// ValidateFinite checks that every entry is a finite number.
// Returns ErrNaNInf on the first NaN or ±Inf entry. Complexity: O(r·c).
func ValidateFinite(m *Dense) error {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}
	return nil
}
