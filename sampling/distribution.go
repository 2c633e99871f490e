// SPDX-License-Identifier: MIT

package sampling

import (
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bosonic/matrix"
)

const (
	opBosonSamplingDistribution = "BosonSamplingDistribution"
	opGaussianDistribution      = "GaussianDistribution"
)

// BosonSamplingDistribution returns the probability of every output pattern
// carrying input.Total() photons, in Patterns order. For a unitary U the
// probabilities sum to 1.
//
// Errors: those of BosonSamplingProbability and Patterns.
func BosonSamplingDistribution(u matrix.Matrix, input Pattern, opts ...Option) ([]Outcome, error) {
	o := gatherOptions(opts...)
	d, n, err := interferometer(u, o)
	if err != nil {
		return nil, samplingErrorf(opBosonSamplingDistribution, err)
	}
	if err = input.validate(n); err != nil {
		return nil, samplingErrorf(opBosonSamplingDistribution, err)
	}
	pats, err := Patterns(n, input.Total(), opts...)
	if err != nil {
		return nil, samplingErrorf(opBosonSamplingDistribution, err)
	}

	// U was validated once; skip the per-pattern unitarity check.
	inner := o
	inner.checkUnitary = false
	out, err := evaluateAll(o.workers, pats, func(p Pattern) (float64, error) {
		amp, err := transitionAmplitude(d, input, p, inner)
		if err != nil {
			return 0, err
		}

		return real(amp)*real(amp) + imag(amp)*imag(amp), nil
	})
	if err != nil {
		return nil, samplingErrorf(opBosonSamplingDistribution, err)
	}

	return out, nil
}

// GaussianDistribution returns the probability of every pattern with at most
// maxPhotons photons for squeezed vacua r sent through U, ordered by photon
// number and then by Patterns order. Odd photon numbers are listed with
// probability 0. The kernel A is built once and shared by all patterns.
//
// The sum approaches 1 as maxPhotons grows; the missing mass is the
// probability of more than maxPhotons photons.
func GaussianDistribution(u matrix.Matrix, r []float64, maxPhotons int, opts ...Option) ([]Outcome, error) {
	o := gatherOptions(opts...)
	k, err := newGaussianKernel(u, r, o)
	if err != nil {
		return nil, samplingErrorf(opGaussianDistribution, err)
	}
	n := len(r)

	var pats []Pattern
	for total := 0; total <= maxPhotons; total++ {
		ps, err := Patterns(n, total, opts...)
		if err != nil {
			return nil, samplingErrorf(opGaussianDistribution, err)
		}
		pats = append(pats, ps...)
		if len(pats) > o.maxPatterns {
			return nil, samplingErrorf(opGaussianDistribution, ErrComputationTooLarge)
		}
	}

	out, err := evaluateAll(o.workers, pats, func(p Pattern) (float64, error) {
		return k.probability(p, o)
	})
	if err != nil {
		return nil, samplingErrorf(opGaussianDistribution, err)
	}

	return out, nil
}

// TotalProbability returns Σ Probability over outcomes.
func TotalProbability(outcomes []Outcome) float64 {
	ps := make([]float64, len(outcomes))
	for i, oc := range outcomes {
		ps[i] = oc.Probability
	}

	return floats.Sum(ps)
}

// evaluateAll runs fn over pats on a fixed-size worker pool. Results are
// stored by index, so the output order equals the input order regardless of
// scheduling. The first error stops further evaluation and is returned.
func evaluateAll(workers int, pats []Pattern, fn func(Pattern) (float64, error)) ([]Outcome, error) {
	out := make([]Outcome, len(pats))
	if len(pats) == 0 {
		return out, nil
	}
	workers = min(workers, len(pats))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if failed.Load() {
					continue
				}
				p, err := fn(pats[i])
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					failed.Store(true)
					continue
				}
				out[i] = Outcome{Pattern: pats[i], Probability: p}
			}
		}()
	}
	for i := range pats {
		if failed.Load() {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
