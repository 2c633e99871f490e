// SPDX-License-Identifier: MIT

package hafnian_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
)

// tol is the absolute tolerance for values of moderate magnitude.
const tol = 1e-9

// mustFrom builds a Dense from a literal or fails the test.
func mustFrom(t testing.TB, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustOnes returns the n×n all-ones matrix.
func mustOnes(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewOnes(n, n)
	require.NoError(t, err)

	return m
}

// mustRandom returns a seeded Ginibre matrix.
func mustRandom(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.RandomComplex(n, n, seed)
	require.NoError(t, err)

	return m
}

// requireNear asserts |got-want| <= tol·max(1,|want|).
func requireNear(t testing.TB, want, got complex128, msgAndArgs ...interface{}) {
	t.Helper()
	scale := cmplx.Abs(want)
	if scale < 1 {
		scale = 1
	}
	require.LessOrEqual(t, cmplx.Abs(got-want), tol*scale, msgAndArgs...)
}

// zeroDiagonal returns a copy of m with its diagonal cleared.
func zeroDiagonal(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	c := m.Clone()
	for i := 0; i < c.Rows(); i++ {
		require.NoError(t, c.Set(i, i, 0))
	}
	d, err := matrix.AsDense(c)
	require.NoError(t, err)

	return d
}
