// SPDX-License-Identifier: MIT

package sampling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

func TestPatterns_OrderAndCount(t *testing.T) {
	ps, err := sampling.Patterns(3, 2)
	require.NoError(t, err)
	want := []sampling.Pattern{
		{2, 0, 0}, {1, 1, 0}, {1, 0, 1}, {0, 2, 0}, {0, 1, 1}, {0, 0, 2},
	}
	assert.Equal(t, want, ps)

	ps, err = sampling.Patterns(4, 3)
	require.NoError(t, err)
	assert.Len(t, ps, 20, "C(6,3)")
	for _, p := range ps {
		assert.Equal(t, 3, p.Total())
	}

	ps, err = sampling.Patterns(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []sampling.Pattern{{}}, ps)

	ps, err = sampling.Patterns(0, 2)
	require.NoError(t, err)
	assert.Empty(t, ps)

	ps, err = sampling.Patterns(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []sampling.Pattern{{5}}, ps)
}

func TestPatterns_Errors(t *testing.T) {
	_, err := sampling.Patterns(-1, 2)
	assert.ErrorIs(t, err, sampling.ErrInvalidShape)
	_, err = sampling.Patterns(3, -1)
	assert.ErrorIs(t, err, sampling.ErrInvalidOccupation)
	_, err = sampling.Patterns(4, 3, sampling.WithMaxPatterns(19))
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
	_, err = sampling.Patterns(4, 3, sampling.WithMaxPatterns(20))
	assert.NoError(t, err)
	_, err = sampling.Patterns(200, 200)
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
}

func TestPattern_Helpers(t *testing.T) {
	p := sampling.Pattern{2, 0, 3}
	assert.Equal(t, 5, p.Total())
	assert.Equal(t, []int{0, 0, 2, 2, 2}, p.Indices())
	assert.Equal(t, 12.0, p.FactorialProduct())
	assert.Equal(t, "|203⟩", p.String())
	assert.Equal(t, "|12,0⟩", sampling.Pattern{12, 0}.String())
}

func TestBosonSamplingDistribution_SumsToOne(t *testing.T) {
	u := tutorialU(t)
	out, err := sampling.BosonSamplingDistribution(u, sampling.Pattern{1, 1, 0, 1})
	require.NoError(t, err)
	require.Len(t, out, 20)

	assert.InDelta(t, 1, sampling.TotalProbability(out), 1e-9)
	assert.Equal(t, sampling.Pattern{3, 0, 0, 0}, out[0].Pattern)
	assert.InDelta(t, 0.0009458483347338538, out[0].Probability, tol)

	// Worker count never changes values or order.
	serial, err := sampling.BosonSamplingDistribution(u, sampling.Pattern{1, 1, 0, 1}, sampling.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, serial, out)
}

func TestBosonSamplingDistribution_HaarUnitary(t *testing.T) {
	u, err := matrix.RandomUnitary(5, 2024)
	require.NoError(t, err)
	out, err := sampling.BosonSamplingDistribution(u, sampling.Pattern{1, 0, 1, 0, 1},
		sampling.WithUnitarityCheck())
	require.NoError(t, err)
	assert.Len(t, out, 35)
	assert.InDelta(t, 1, sampling.TotalProbability(out), 1e-9)
	for _, oc := range out {
		assert.GreaterOrEqual(t, oc.Probability, 0.0)
	}
}

func TestGaussianDistribution(t *testing.T) {
	u := tutorialU(t)
	r := unitSqueezing(4)
	out, err := sampling.GaussianDistribution(u, r, 4)
	require.NoError(t, err)
	// 1 + 4 + 10 + 20 + 35 patterns with 0..4 photons.
	require.Len(t, out, 70)
	assert.Equal(t, sampling.Pattern{0, 0, 0, 0}, out[0].Pattern)
	assert.InDelta(t, 0.1763784476141347, out[0].Probability, tol)

	// The photon-number distribution is independent of U:
	// P(total=2) = N·½·tanh²r / cosh^N r.
	var two float64
	for _, oc := range out {
		switch oc.Pattern.Total() % 2 {
		case 1:
			assert.Equal(t, 0.0, oc.Probability)
		default:
			if oc.Pattern.Total() == 2 {
				two += oc.Probability
			}
		}
	}
	want := 4 * 0.5 * math.Pow(math.Tanh(1), 2) / math.Pow(math.Cosh(1), 4)
	assert.InDelta(t, want, two, 1e-9)

	// Weak squeezing: nearly all mass sits at ≤ 4 photons.
	weak, err := sampling.GaussianDistribution(u, []float64{0.1, 0.1, 0.1, 0.1}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1, sampling.TotalProbability(weak), 1e-4)
}

func TestDistribution_Errors(t *testing.T) {
	u := tutorialU(t)
	_, err := sampling.BosonSamplingDistribution(u, sampling.Pattern{1, 1})
	assert.ErrorIs(t, err, sampling.ErrInvalidShape)

	_, err = sampling.GaussianDistribution(u, unitSqueezing(4), 6, sampling.WithMaxPatterns(50))
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)

	_, err = sampling.BosonSamplingDistribution(u, sampling.Pattern{2, 1, 0, 1},
		sampling.WithEvaluator(hafnian.WithMaxDimension(3)))
	assert.ErrorIs(t, err, sampling.ErrComputationTooLarge)
}
