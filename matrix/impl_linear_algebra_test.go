// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 2i}, {3, 4}})
	b := MustFrom(t, [][]complex128{{1i, 1}, {1, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{1 + 1i, 1 + 2i}, {4, 5}}, sum, 0)

	diff, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{1 - 1i, -1 + 2i}, {2, 3}}, diff, 0)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 2i}})
	s, err := matrix.Scale(a, 1i)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{1i, -2}}, s, 0)
}

func TestMul_KnownProduct(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 1i}, {0, 2}})
	b := MustFrom(t, [][]complex128{{1i, 0}, {1, 1}})

	// [1 i; 0 2]·[i 0; 1 1] = [i+i, i; 2, 2]
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{2i, 1i}, {2, 2}}, p, 0)

	fallback, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{2i, 1i}, {2, 2}}, fallback, 0)

	_, err = matrix.Mul(a, MustDense(t, 3, 1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeAndConjTranspose(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 2i, 3}, {4 - 1i, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{1, 4 - 1i}, {2i, 5}, {3, 6}}, tr, 0)

	h, err := matrix.ConjTranspose(a)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{1, 4 + 1i}, {-2i, 5}, {3, 6}}, h, 0)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNewDiag(t *testing.T) {
	d, err := matrix.NewDiag([]complex128{1, 2i})
	require.NoError(t, err)
	RequireClose(t, [][]complex128{{1, 0}, {0, 2i}}, d, 0)

	empty, err := matrix.NewDiag(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestBipartite(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 2}, {3, 4}})
	b, err := matrix.Bipartite(a)
	require.NoError(t, err)
	RequireClose(t, [][]complex128{
		{0, 0, 1, 2},
		{0, 0, 3, 4},
		{1, 3, 0, 0},
		{2, 4, 0, 0},
	}, b, 0)

	sym, err := matrix.IsSymmetric(b)
	require.NoError(t, err)
	assert.True(t, sym)

	_, err = matrix.Bipartite(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestMaxAbsDiff(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 2}})
	b := MustFrom(t, [][]complex128{{1, 2 + 3i}})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-15)
}

func TestQR_Reconstructs(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		g, err := matrix.RandomComplex(n, n, int64(10+n))
		require.NoError(t, err)

		q, r, err := matrix.QR(g)
		require.NoError(t, err)

		qr, err := matrix.Mul(q, r)
		require.NoError(t, err)
		d, err := matrix.MaxAbsDiff(qr, g)
		require.NoError(t, err)
		assert.Less(t, d, 1e-12, "Q·R must reproduce the input (n=%d)", n)

		ok, err := matrix.IsUnitary(q)
		require.NoError(t, err)
		assert.True(t, ok, "Q must be unitary (n=%d)", n)

		for i := 0; i < n; i++ {
			rii := MustAt(t, r, i, i)
			assert.Greater(t, real(rii), 0.0)
			assert.Equal(t, 0.0, imag(rii))
			for j := 0; j < i; j++ {
				assert.Equal(t, complex(0, 0), MustAt(t, r, i, j), "R lower triangle")
			}
		}
	}
}

func TestQR_RankDeficient(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 2}, {2, 4}})
	_, _, err := matrix.QR(a)
	assert.ErrorIs(t, err, matrix.ErrRankDeficient)

	_, _, err = matrix.QR(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestUnitaryTimesAdjointIsIdentity(t *testing.T) {
	u, err := matrix.RandomUnitary(5, 99)
	require.NoError(t, err)
	uh, err := matrix.H(u)
	require.NoError(t, err)
	p, err := matrix.Product(u, uh)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	ok, err := matrix.AllClose(p, id, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	// Column norms of a unitary are 1.
	for j := 0; j < 5; j++ {
		var s float64
		for i := 0; i < 5; i++ {
			s += cmplx.Abs(MustAt(t, u, i, j)) * cmplx.Abs(MustAt(t, u, i, j))
		}
		assert.InDelta(t, 1.0, s, 1e-12)
	}
}
