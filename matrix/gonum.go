// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromCMatrix copies a gonum complex matrix into a new Dense.
// Non-finite entries are rejected under the default numeric policy.
//
// AI-Hints:
//   - Use this to hand an interferometer built by a gonum-based simulator to
//     the evaluator without going through [][]complex128.
func FromCMatrix(src mat.CMatrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromCMatrix", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromCMatrix", err)
	}
	out.validateNaNInf = o.validateNaNInf

	var i, j int
	var v complex128
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if o.validateNaNInf && isNonFiniteComplex(v) {
				return nil, matrixErrorf("FromCMatrix", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToCDense copies m into a gonum *mat.CDense.
// gonum forbids empty matrices, so a zero-area Dense yields ErrInvalidDimensions.
func (m *Dense) ToCDense() (*mat.CDense, error) {
	if m == nil {
		return nil, matrixErrorf("ToCDense", ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf("ToCDense", ErrInvalidDimensions)
	}
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return mat.NewCDense(m.r, m.c, buf), nil
}
