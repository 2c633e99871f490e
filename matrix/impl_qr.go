// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// rankTol is the relative residual-norm floor (against the original column
// norm) below which QR reports ErrRankDeficient.
const rankTol = 1e-12

// QR factors a (m×n, m ≥ n) as a = Q·R with Q m×n having orthonormal columns
// and R n×n upper triangular with a real, strictly positive diagonal.
//
// Implementation:
//   - Stage 1: validate shape; copy columns of a into working vectors.
//   - Stage 2: modified Gram–Schmidt: for column j, project out every q_i
//     (i<j) one at a time using the already-updated vector, then normalize.
//
// Behavior highlights:
//   - The positive diagonal makes the factorization unique, which is exactly
//     the normalization that turns QR of a Ginibre matrix into a Haar sample.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (m < n), ErrRankDeficient.
//
// Determinism:
//   - Fixed j→i→k order.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func QR(a Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	d, err := toDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	m, n := d.r, d.c
	if m < n {
		return nil, nil, matrixErrorf(opQR, ErrInvalidShape)
	}
	Q, err := NewDense(m, n)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	R, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	v := make([]complex128, m)
	var (
		i, j, k       int
		rij           complex128
		norm, colNorm float64
	)
	for j = 0; j < n; j++ {
		colNorm = 0
		for k = 0; k < m; k++ {
			v[k] = d.data[k*n+j]
			colNorm += real(v[k])*real(v[k]) + imag(v[k])*imag(v[k])
		}
		colNorm = math.Sqrt(colNorm)
		for i = 0; i < j; i++ {
			// r_ij = <q_i, v> with the conjugate on q_i.
			rij = 0
			for k = 0; k < m; k++ {
				rij += cmplx.Conj(Q.data[k*n+i]) * v[k]
			}
			R.data[i*n+j] = rij
			for k = 0; k < m; k++ {
				v[k] -= rij * Q.data[k*n+i]
			}
		}
		norm = 0
		for k = 0; k < m; k++ {
			norm += real(v[k])*real(v[k]) + imag(v[k])*imag(v[k])
		}
		norm = math.Sqrt(norm)
		if norm == 0 || norm <= rankTol*colNorm {
			return nil, nil, matrixErrorf(opQR, fmt.Errorf("column %d: %w", j, ErrRankDeficient))
		}
		R.data[j*n+j] = complex(norm, 0)
		for k = 0; k < m; k++ {
			Q.data[k*n+j] = v[k] / complex(norm, 0)
		}
	}

	return Q, R, nil
}
