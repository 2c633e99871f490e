package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
)

func TestRandomUnitary_DeterministicPerSeed(t *testing.T) {
	a, err := matrix.RandomUnitary(4, 7)
	require.NoError(t, err)
	b, err := matrix.RandomUnitary(4, 7)
	require.NoError(t, err)
	c, err := matrix.RandomUnitary(4, 8)
	require.NoError(t, err)

	same, err := matrix.AllClose(a, b, 0)
	require.NoError(t, err)
	assert.True(t, same, "same seed ⇒ same matrix")

	diff, err := matrix.MaxAbsDiff(a, c)
	require.NoError(t, err)
	assert.Greater(t, diff, 1e-3, "different seeds ⇒ different matrices")

	// seed 0 maps onto the default seed.
	z, err := matrix.RandomUnitary(4, 0)
	require.NoError(t, err)
	one, err := matrix.RandomUnitary(4, 1)
	require.NoError(t, err)
	same, err = matrix.AllClose(z, one, 0)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestRandomSymmetric(t *testing.T) {
	s, err := matrix.RandomSymmetric(6, 3)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(s, 0))
}

func TestDeriveSeed_Spreads(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 64; s++ {
		seed := matrix.DeriveSeed(42, s)
		assert.False(t, seen[seed], "stream %d collided", s)
		seen[seed] = true
	}
	assert.Equal(t, matrix.DeriveSeed(42, 5), matrix.DeriveSeed(42, 5))
}
