// SPDX-License-Identifier: MIT

package sampling_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

// allocatedBy reports the bytes allocated while fn runs.
func allocatedBy(fn func()) uint64 {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)

	return after.TotalAlloc - before.TotalAlloc
}

func TestPatterns_PhotonTotalOverflow(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	huge := sampling.Pattern{math.MaxInt, 1}

	assert.NotPanics(t, func() {
		_, err = sampling.BosonSamplingProbability(id, huge, huge)
	})
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)

	assert.NotPanics(t, func() {
		_, err = sampling.TransitionAmplitude(id, sampling.Pattern{1, 1}, huge)
	})
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)

	assert.NotPanics(t, func() {
		_, err = sampling.GaussianPatternProbability(id, unitSqueezing(2), huge)
	})
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
}

func TestBosonSampling_OversizedTotalFailsBeforeAllocating(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	// A 100000-photon submatrix would need 160 GB.
	big := sampling.Pattern{100000, 0}
	n := allocatedBy(func() {
		_, err = sampling.BosonSamplingProbability(id, big, big)
	})
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
	assert.Less(t, n, uint64(1<<20), "bytes allocated before rejecting")

	_, err = sampling.BosonSamplingProbability(id, sampling.Pattern{3, 0}, sampling.Pattern{3, 0},
		sampling.WithEvaluator(hafnian.WithMaxDimension(2)))
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
}

func TestGaussian_OversizedTotalFailsBeforeAllocating(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	big := sampling.Pattern{4000, 0}
	n := allocatedBy(func() {
		_, err = sampling.GaussianPatternProbability(id, unitSqueezing(2), big,
			sampling.WithEvaluator(hafnian.WithMaxDimension(4)))
	})
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
	assert.Less(t, n, uint64(1<<20), "bytes allocated before rejecting")

	// Odd totals have no perfect matching, whatever their size.
	p, err := sampling.GaussianPatternProbability(id, unitSqueezing(2), sampling.Pattern{math.MaxInt, 0})
	require.NoError(t, err)
	assert.Zero(t, p)
}
