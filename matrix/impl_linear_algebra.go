// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix product,
// transpose, conjugate transpose and block assembly. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels never mutate their operands; each returns a freshly allocated *Dense.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opBipartite     = "Bipartite"
	opDiag          = "NewDiag"
	opMaxAbsDiff    = "MaxAbsDiff"
	opQR            = "QR"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Determinism:
//   - Single flat slice walk 0..(r*c−1) over Dense copies of the operands.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b (element-wise). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a − b (element-wise). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range d.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); densify operands; allocate C (r×c).
//   - Stage 2: i→k→j triple loop on flat slices, skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Interferometer products (U·D·Uᵀ) are tiny; the zero-skip pays off for
//     diagonal middle factors.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// transposeWith copies m into a (cols×rows) Dense applying f to each entry.
func transposeWith(m Matrix, tag string, f func(complex128) complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := d.r, d.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = f(d.data[baseSrc+j])
		}
	}

	return res, nil
}

// Transpose returns mᵀ (no conjugation).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	return transposeWith(m, opTranspose, func(z complex128) complex128 { return z })
}

// ConjTranspose returns the Hermitian adjoint m†.
// Complexity: O(r*c).
func ConjTranspose(m Matrix) (*Dense, error) {
	return transposeWith(m, opConjTranspose, cmplx.Conj)
}

// NewDiag returns the square matrix with d on its main diagonal.
// An empty d yields the 0×0 matrix.
func NewDiag(d []complex128) (*Dense, error) {
	n := len(d)
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i, v := range d {
		if res.validateNaNInf && isNonFiniteComplex(v) {
			return nil, matrixErrorf(opDiag, denseErrorf(ctxSet, i, i, ErrNaNInf))
		}
		res.data[i*n+i] = v
	}

	return res, nil
}

// Bipartite returns the 2m×2m block matrix [[0, A], [Aᵀ, 0]] for an m×m A.
// Its hafnian equals the permanent of A: every perfect matching of the block
// graph pairs a row vertex with a column vertex.
//
// Errors: ErrNilMatrix, ErrInvalidShape (A not square).
// Complexity: O(m²).
func Bipartite(a Matrix) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opBipartite, err)
	}
	d, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opBipartite, err)
	}
	m := d.r
	n := 2 * m
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opBipartite, err)
	}
	var i, j int
	var v complex128
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			v = d.data[i*m+j]
			res.data[i*n+(m+j)] = v // upper-right block: A
			res.data[(m+j)*n+i] = v // lower-left block: Aᵀ
		}
	}

	return res, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]|.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := toDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := toDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst, d float64
	for k := range da.data {
		if d = cmplx.Abs(da.data[k] - db.data[k]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
