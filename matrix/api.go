// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - IsUnitary / IsSymmetric are boolean forms of the validators for quick guards.

package matrix

import (
	"errors"

	"gonum.org/v1/gonum/floats/scalar"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewOnes returns the rows×cols all-ones matrix.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = 1
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m.
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// H is an alias for ConjTranspose: returns m†.
func H(m Matrix) (*Dense, error) { return ConjTranspose(m) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// IsSymmetric reports whether m = mᵀ within the resolved epsilon.
// Structural errors (nil, non-square) are returned; asymmetry is (false, nil).
func IsSymmetric(m Matrix, opts ...Option) (bool, error) {
	err := ValidateSymmetric(m, Epsilon(opts...))
	if errors.Is(err, ErrAsymmetry) {
		return false, nil
	}

	return err == nil, err
}

// IsUnitary reports whether m·m† = I within the resolved epsilon.
// Structural errors are returned; non-unitarity is (false, nil).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	err := ValidateUnitary(m, Epsilon(opts...))
	if errors.Is(err, ErrNonUnitary) {
		return false, nil
	}

	return err == nil, err
}

// AllClose checks that a and b have identical shapes and that every entry
// agrees component-wise within tol, absolutely or relatively
// (gonum scalar.EqualWithinAbsOrRel).
// Returns (false, nil) on a value mismatch; shape or nil problems are errors.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if tol < 0 {
		tol = -tol
	}
	for k := range da.data {
		if !scalar.EqualWithinAbsOrRel(real(da.data[k]), real(db.data[k]), tol, tol) ||
			!scalar.EqualWithinAbsOrRel(imag(da.data[k]), imag(db.data[k]), tol, tol) {
			return false, nil
		}
	}

	return true, nil
}
