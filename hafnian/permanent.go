// SPDX-License-Identifier: MIT

package hafnian

import (
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/bosonic/matrix"
)

const (
	opPermanent      = "Permanent"
	opPermanentNaive = "PermanentNaive"
)

// Permanent returns perm(A) = Σ_σ ∏_i A[i][σ(i)] for a square complex matrix.
//
// Implementation:
//   - Ryser's inclusion–exclusion formula
//     perm(A) = (-1)ⁿ Σ_{S≠∅} (-1)^|S| ∏_i Σ_{j∈S} A[i][j],
//     with subsets visited in Gray-code order so each step adds or removes a
//     single column from the running row sums.
//   - At or above the parallel threshold the 2ⁿ-1 subsets are split into
//     contiguous Gray-code ranges; each range seeds its row sums from the
//     Gray code of its first index.
//
// Behavior highlights:
//   - perm of the 0×0 matrix is 1.
//   - 1×1 and 2×2 are evaluated in closed form.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square).
//   - ErrComputationTooLarge when n exceeds WithMaxDimension.
//   - ctx.Err() (wrapped) on cancellation.
//
// Complexity:
//   - Time O(2ⁿ·n), Space O(n) per worker.
func Permanent(m matrix.Matrix, opts ...Option) (complex128, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, hafnianErrorf(opPermanent, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if n > o.maxDim {
		return 0, hafnianErrorf(opPermanent, ErrComputationTooLarge)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return 0, hafnianErrorf(opPermanent, err)
	}
	a := d.RawData()

	switch n {
	case 0:
		return 1, nil
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] + a[1]*a[2], nil
	}

	kernel := func(lo, hi uint64) complex128 { return ryserRange(a, n, lo, hi) }
	sum, err := sumRange(o, 1, uint64(1)<<uint(n), n >= o.parallelThreshold, kernel)
	if err != nil {
		return 0, hafnianErrorf(opPermanent, err)
	}
	if n%2 == 1 {
		sum = -sum
	}

	return sum, nil
}

// ryserRange sums (-1)^|S| ∏_i rowsum_S(i) over the Gray codes of k ∈ [lo, hi),
// lo ≥ 1. a is the row-major n×n data.
func ryserRange(a []complex128, n int, lo, hi uint64) complex128 {
	rs := make([]complex128, n)
	g := lo ^ (lo >> 1)
	var i, j int
	for j = 0; j < n; j++ {
		if g>>uint(j)&1 == 1 {
			for i = 0; i < n; i++ {
				rs[i] += a[i*n+j]
			}
		}
	}

	sum := ryserTerm(rs, g)
	for k := lo + 1; k < hi; k++ {
		j = bits.TrailingZeros64(k)
		g ^= uint64(1) << uint(j)
		if g>>uint(j)&1 == 1 {
			for i = 0; i < n; i++ {
				rs[i] += a[i*n+j]
			}
		} else {
			for i = 0; i < n; i++ {
				rs[i] -= a[i*n+j]
			}
		}
		sum += ryserTerm(rs, g)
	}

	return sum
}

// ryserTerm returns (-1)^popcount(g) ∏ rs.
func ryserTerm(rs []complex128, g uint64) complex128 {
	p := complex(1, 0)
	for _, v := range rs {
		p *= v
		if p == 0 {
			return 0
		}
	}
	if bits.OnesCount64(g)%2 == 1 {
		return -p
	}

	return p
}

// PermanentNaive evaluates the permanent straight from its definition by
// enumerating all n! permutations. It is a reference for tests and is capped
// at ReferencePermanentLimit.
func PermanentNaive(m matrix.Matrix) (complex128, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, hafnianErrorf(opPermanentNaive, err)
	}
	n := m.Rows()
	if n > ReferencePermanentLimit {
		return 0, hafnianErrorf(opPermanentNaive, ErrComputationTooLarge)
	}
	if n == 0 {
		return 1, nil
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return 0, hafnianErrorf(opPermanentNaive, err)
	}
	a := d.RawData()

	var sum complex128
	for _, sigma := range combin.Permutations(n, n) {
		p := complex(1, 0)
		for i, j := range sigma {
			p *= a[i*n+j]
		}
		sum += p
	}

	return sum, nil
}
