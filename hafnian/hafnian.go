// SPDX-License-Identifier: MIT

package hafnian

import (
	"math/bits"

	"github.com/katalvlaran/bosonic/matrix"
)

const (
	opHafnian              = "Hafnian"
	opLoopHafnian          = "LoopHafnian"
	opHafnianRecursive     = "HafnianRecursive"
	opLoopHafnianRecursive = "LoopHafnianRecursive"
)

// Hafnian returns haf(A) = Σ over perfect matchings M of ∏_{(i,j)∈M} A[i][j]
// for a square matrix of even dimension.
//
// Only the strict upper triangle (i<j) is read: the lower triangle and the
// diagonal never influence the result.
//
// Implementation:
//   - Power-trace formula over the n/2 index pairs (0,1),(2,3),…:
//     haf(A) = Σ_{S ⊆ pairs} (-1)^{n/2-|S|} e_{n/2}(S), where for the
//     principal block B = A[S,S] and C = B·X (X swaps paired indices)
//     p_j = tr(Cʲ)/(2j) and e is the exponential series e_q = (1/q)Σ t·p_t·e_{q-t}.
//   - At or above the parallel threshold the 2^{n/2} subsets are split into
//     contiguous ranges evaluated by the worker pool.
//
// Behavior highlights:
//   - haf of the 0×0 matrix is 1.
//   - haf(Bipartite(A)) == Permanent(A).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square), ErrInvalidDimension (odd n).
//   - ErrComputationTooLarge when n exceeds WithMaxDimension.
//   - ctx.Err() (wrapped) on cancellation.
//
// Complexity:
//   - Time O(2^{n/2}·n⁴), Space O(n²) per worker.
func Hafnian(m matrix.Matrix, opts ...Option) (complex128, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, hafnianErrorf(opHafnian, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if n%2 == 1 {
		return 0, hafnianErrorf(opHafnian, ErrInvalidDimension)
	}
	if n > o.maxDim {
		return 0, hafnianErrorf(opHafnian, ErrComputationTooLarge)
	}
	if n == 0 {
		return 1, nil
	}
	a, err := symmetricData(m, n, false)
	if err != nil {
		return 0, hafnianErrorf(opHafnian, err)
	}
	if n == 2 {
		return a[1], nil
	}

	res, err := powerTrace(o, a, n, false)
	if err != nil {
		return 0, hafnianErrorf(opHafnian, err)
	}

	return res, nil
}

// LoopHafnian returns the loop hafnian: the sum over all perfect matchings of
// the complete graph with self-loops, where a loop on i contributes A[i][i].
//
// Implementation:
//   - Same power-trace summation as Hafnian with the loop correction
//     p_j += ½·(X·v)ᵀ·C^{j-1}·v, v = diag(A[S,S]).
//   - Odd n is padded with one isolated vertex carrying a unit loop, which
//     every matching must cover with that loop.
//
// Behavior highlights:
//   - With a zero diagonal LoopHafnian equals Hafnian (0 for odd n).
//   - lhaf of the 0×0 matrix is 1.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape, ErrComputationTooLarge, ctx.Err().
func LoopHafnian(m matrix.Matrix, opts ...Option) (complex128, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, hafnianErrorf(opLoopHafnian, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if n > o.maxDim {
		return 0, hafnianErrorf(opLoopHafnian, ErrComputationTooLarge)
	}
	if n == 0 {
		return 1, nil
	}
	size := n + n%2
	a, err := symmetricData(m, size, true)
	if err != nil {
		return 0, hafnianErrorf(opLoopHafnian, err)
	}
	if size != n {
		a[n*size+n] = 1
	}

	res, err := powerTrace(o, a, size, true)
	if err != nil {
		return 0, hafnianErrorf(opLoopHafnian, err)
	}

	return res, nil
}

// symmetricData returns a size×size row-major buffer holding the symmetric
// completion of m's strict upper triangle. The diagonal is copied only when
// loops is set. size may exceed m's dimension (padding stays zero).
func symmetricData(m matrix.Matrix, size int, loops bool) ([]complex128, error) {
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	n := d.Rows()
	src := d.RawData()
	out := make([]complex128, size*size)
	var i, j int
	for i = 0; i < n; i++ {
		if loops {
			out[i*size+i] = src[i*n+i]
		}
		for j = i + 1; j < n; j++ {
			out[i*size+j] = src[i*n+j]
			out[j*size+i] = src[i*n+j]
		}
	}

	return out, nil
}

// powerTrace sums the signed power-trace terms over every subset of the n/2
// index pairs.
func powerTrace(o Options, a []complex128, n int, loops bool) (complex128, error) {
	half := n / 2
	kernel := func(lo, hi uint64) complex128 {
		w := newTraceWork(n, loops)
		var sum complex128
		for mask := lo; mask < hi; mask++ {
			sum += w.term(a, mask)
		}

		return sum
	}

	return sumRange(o, 0, uint64(1)<<uint(half), n >= o.parallelThreshold, kernel)
}

// traceWork is the per-goroutine scratch space of powerTrace.
type traceWork struct {
	n, half int
	loops   bool

	idx          []int
	c, pw, tmp   []complex128
	p, e         []complex128
	v, vx, w, wn []complex128
}

func newTraceWork(n int, loops bool) *traceWork {
	half := n / 2
	w := &traceWork{
		n:     n,
		half:  half,
		loops: loops,
		idx:   make([]int, n),
		c:     make([]complex128, n*n),
		pw:    make([]complex128, n*n),
		tmp:   make([]complex128, n*n),
		p:     make([]complex128, half+1),
		e:     make([]complex128, half+1),
	}
	if loops {
		w.v = make([]complex128, n)
		w.vx = make([]complex128, n)
		w.w = make([]complex128, n)
		w.wn = make([]complex128, n)
	}

	return w
}

// term returns (-1)^{half-|S|}·e_half for the pair subset encoded by mask.
func (w *traceWork) term(a []complex128, mask uint64) complex128 {
	if mask == 0 {
		return 0
	}
	n, half := w.n, w.half

	k := 0
	for p := 0; p < half; p++ {
		if mask>>uint(p)&1 == 1 {
			w.idx[k] = 2 * p
			w.idx[k+1] = 2*p + 1
			k += 2
		}
	}

	// C = A[S,S]·X : C[x][y] = A[idx[x]][idx[y^1]].
	var x, y, z int
	for x = 0; x < k; x++ {
		row := w.idx[x] * n
		for y = 0; y < k; y++ {
			w.c[x*k+y] = a[row+w.idx[y^1]]
		}
	}
	copy(w.pw[:k*k], w.c[:k*k])

	if w.loops {
		for x = 0; x < k; x++ {
			w.v[x] = a[w.idx[x]*n+w.idx[x]]
		}
		for x = 0; x < k; x++ {
			w.vx[x] = w.v[x^1]
			w.w[x] = w.v[x]
		}
	}

	var tr, s complex128
	for j := 1; j <= half; j++ {
		tr = 0
		for x = 0; x < k; x++ {
			tr += w.pw[x*k+x]
		}
		w.p[j] = tr / complex(float64(2*j), 0)

		if w.loops {
			s = 0
			for x = 0; x < k; x++ {
				s += w.vx[x] * w.w[x]
			}
			w.p[j] += s / 2
			for x = 0; x < k; x++ {
				s = 0
				for y = 0; y < k; y++ {
					s += w.c[x*k+y] * w.w[y]
				}
				w.wn[x] = s
			}
			w.w, w.wn = w.wn, w.w
		}

		if j == half {
			break
		}
		// pw ← pw·C
		for x = 0; x < k; x++ {
			for y = 0; y < k; y++ {
				s = 0
				for z = 0; z < k; z++ {
					s += w.pw[x*k+z] * w.c[z*k+y]
				}
				w.tmp[x*k+y] = s
			}
		}
		w.pw, w.tmp = w.tmp, w.pw
	}

	w.e[0] = 1
	for q := 1; q <= half; q++ {
		s = 0
		for t := 1; t <= q; t++ {
			s += complex(float64(t), 0) * w.p[t] * w.e[q-t]
		}
		w.e[q] = s / complex(float64(q), 0)
	}

	if (half-bits.OnesCount64(mask))%2 == 1 {
		return -w.e[half]
	}

	return w.e[half]
}

// HafnianRecursive evaluates the hafnian by expanding along the first row:
// haf(A) = Σ_{j>0} A[0][j]·haf(A without rows/cols 0 and j).
// It reads only the strict upper triangle, is capped at ReferenceHafnianLimit,
// and serves as a test reference for Hafnian.
func HafnianRecursive(m matrix.Matrix) (complex128, error) {
	return recursiveEntry(opHafnianRecursive, m, false)
}

// LoopHafnianRecursive is the loop-hafnian counterpart of HafnianRecursive:
// the first index is either matched to another index or covered by its loop.
// Odd dimensions are allowed.
func LoopHafnianRecursive(m matrix.Matrix) (complex128, error) {
	return recursiveEntry(opLoopHafnianRecursive, m, true)
}

func recursiveEntry(op string, m matrix.Matrix, loops bool) (complex128, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, hafnianErrorf(op, err)
	}
	n := m.Rows()
	if !loops && n%2 == 1 {
		return 0, hafnianErrorf(op, ErrInvalidDimension)
	}
	if n > ReferenceHafnianLimit {
		return 0, hafnianErrorf(op, ErrComputationTooLarge)
	}
	a, err := symmetricData(m, n, loops)
	if err != nil {
		return 0, hafnianErrorf(op, err)
	}
	rest := make([]int, n)
	for i := range rest {
		rest[i] = i
	}

	return expand(a, n, rest, loops), nil
}

// expand sums over matchings of the vertices in rest.
func expand(a []complex128, n int, rest []int, loops bool) complex128 {
	if len(rest) == 0 {
		return 1
	}
	i := rest[0]
	var sum complex128
	if loops && a[i*n+i] != 0 {
		sum += a[i*n+i] * expand(a, n, rest[1:], loops)
	}
	sub := make([]int, 0, len(rest))
	for t := 1; t < len(rest); t++ {
		wgt := a[i*n+rest[t]]
		if wgt == 0 {
			continue
		}
		sub = append(sub[:0], rest[1:t]...)
		sub = append(sub, rest[t+1:]...)
		sum += wgt * expand(a, n, sub, loops)
	}

	return sum
}
