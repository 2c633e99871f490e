// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry/unitarity checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs O(n²) on the upper triangle only; unitarity is O(n³).
//
// AI-Hints:
//  - Use ValidateSymmetric on U·diag(tanh r)·Uᵀ before taking hafnians of it.
//  - Use ValidateUnitary on interferometers read from files or typed by hand.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrInvalidShape if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrInvalidShape)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A = Aᵀ within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j. No conjugation is applied: the
// matrices fed to hafnians are complex symmetric, not Hermitian.
//
// Inputs: square Matrix m, tolerance tol (finite; negative is normalized to |tol|).
// Complexity: O(n^2). Space: O(1).
// Returns ErrNilMatrix/ErrInvalidShape on structural issues, ErrNaNInf on bad
// tol, ErrAsymmetry on violation.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var (
		i, j     int
		aij, aji complex128
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if cmplx.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateUnitary checks max |(U·U†)[i,j] − δij| ≤ tol.
//
// Errors: ErrNilMatrix/ErrInvalidShape, ErrNaNInf on bad tol, ErrNonUnitary on violation.
// Complexity: O(n³) time, O(1) extra space (the product is never materialized).
func ValidateUnitary(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateUnitary", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}
	d, err := toDense(m)
	if err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}

	n := d.r
	var (
		i, j, k int
		acc     complex128
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += d.data[i*n+k] * cmplx.Conj(d.data[j*n+k])
			}
			if i == j {
				acc -= 1
			}
			// (U·U†) is Hermitian, so the upper triangle covers every entry.
			if cmplx.Abs(acc) > tol {
				return validatorErrorf("ValidateUnitary", fmt.Errorf("(%d,%d): %w", i, j, ErrNonUnitary))
			}
		}
	}

	return nil
}
