// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
)

// tol is the comparison tolerance for products of O(1) entries.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFrom builds a Dense from a literal or fails the test.
func MustFrom(t *testing.T, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireClose asserts |got - want| ≤ eps for every entry of a literal.
func RequireClose(t *testing.T, want [][]complex128, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			v := MustAt(t, got, i, j)
			require.LessOrEqualf(t, cmplx.Abs(v-want[i][j]), eps, "entry (%d,%d): got %v want %v", i, j, v, want[i][j])
		}
	}
}
