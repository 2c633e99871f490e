// SPDX-License-Identifier: MIT

package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
)

// tol is the absolute probability tolerance against the reference values,
// which were computed from the same 12-digit unitary.
const tol = 1e-9

// tutorialU is a fixed 4-mode interferometer (unitary to ~1e-12).
func tutorialU(t testing.TB) *matrix.Dense {
	t.Helper()
	u, err := matrix.NewDenseFrom([][]complex128{
		{0.219546940711 - 0.256534554457i, 0.611076853957 + 0.524178937791i, -0.102700187435 + 0.474478834685i, -0.027250232925 + 0.03729094623i},
		{0.451281863394 + 0.602582912475i, 0.456952590016 + 0.01230749109i, 0.131625867435 - 0.450417744715i, 0.035283194078 - 0.053244267184i},
		{0.038710094355 + 0.492715562066i, -0.019212744068 - 0.321842852355i, -0.240776471286 + 0.524432833034i, -0.458388143039 + 0.329633367819i},
		{-0.156619083736 + 0.224568570065i, 0.109992223305 - 0.163750223027i, -0.421179844245 + 0.183644837982i, 0.818769184612 + 0.068015658737i},
	})
	require.NoError(t, err)

	return u
}

// unitSqueezing returns r = (1, …, 1) for n modes.
func unitSqueezing(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 1
	}

	return r
}

// permuteModes relabels modes by perm: new mode i is old mode perm[i].
func permuteModes(t testing.TB, u *matrix.Dense, perm []int) *matrix.Dense {
	t.Helper()
	p, err := u.Induced(perm, perm)
	require.NoError(t, err)

	return p
}
