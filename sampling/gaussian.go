// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
)

const (
	opKernelMatrix                     = "KernelMatrix"
	opGaussianBosonSamplingProbability = "GaussianBosonSamplingProbability"
	opGaussianPatternProbability       = "GaussianPatternProbability"
)

// validateSqueezing checks len(r) == modes and every r_i finite, >= 0.
func validateSqueezing(r []float64, modes int) error {
	if err := matrix.ValidateVecLen(r, modes); err != nil {
		return fmt.Errorf("squeezing: %w: %w", ErrInvalidShape, err)
	}
	for i, v := range r {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("squeezing[%d]=%v: %w", i, v, ErrInvalidSqueezing)
		}
	}

	return nil
}

// gaussianKernel holds A = U·diag(tanh r)·Uᵀ and 1/∏cosh r_i for reuse across
// patterns of the same state.
type gaussianKernel struct {
	a      *matrix.Dense
	vacuum float64
}

func newGaussianKernel(u matrix.Matrix, r []float64, o Options) (*gaussianKernel, error) {
	d, n, err := interferometer(u, o)
	if err != nil {
		return nil, err
	}
	if err = validateSqueezing(r, n); err != nil {
		return nil, err
	}

	t := make([]complex128, n)
	vacuum := 1.0
	for i, v := range r {
		t[i] = complex(math.Tanh(v), 0)
		vacuum /= math.Cosh(v)
	}
	diag, err := matrix.NewDiag(t)
	if err != nil {
		return nil, err
	}
	ud, err := matrix.Mul(d, diag)
	if err != nil {
		return nil, err
	}
	ut, err := matrix.Transpose(d)
	if err != nil {
		return nil, err
	}
	a, err := matrix.Mul(ud, ut)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSymmetric(a, o.eps); err != nil {
		return nil, fmt.Errorf("kernel: %w: %w", ErrInternalInconsistency, err)
	}

	return &gaussianKernel{a: a, vacuum: vacuum}, nil
}

// probability returns |haf(A_n)|²·vacuum/∏n_i! for an already validated
// pattern. Odd totals have no perfect matching and return 0.
func (k *gaussianKernel) probability(p Pattern, o Options) (float64, error) {
	if p.Total()%2 == 1 {
		return 0, nil
	}
	if err := checkDimension(p.Total(), o); err != nil {
		return 0, err
	}
	idx := p.Indices()
	sub, err := k.a.Induced(idx, idx)
	if err != nil {
		return 0, err
	}
	h, err := hafnian.Hafnian(sub, o.evalOpts...)
	if err != nil {
		return 0, err
	}
	abs2 := real(h)*real(h) + imag(h)*imag(h)

	return abs2 * k.vacuum / p.FactorialProduct(), nil
}

// KernelMatrix returns the symmetric matrix A = U·diag(tanh r)·Uᵀ of the pure
// zero-displacement Gaussian state obtained by sending single-mode squeezed
// vacua with parameters r through U. Note the plain transpose: A is complex
// symmetric, not Hermitian.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square U, len(r) ≠ N).
//   - ErrInvalidSqueezing.
//   - ErrInternalInconsistency when A is not symmetric within epsilon, or U is
//     not unitary under WithUnitarityCheck.
func KernelMatrix(u matrix.Matrix, r []float64, opts ...Option) (*matrix.Dense, error) {
	k, err := newGaussianKernel(u, r, gatherOptions(opts...))
	if err != nil {
		return nil, samplingErrorf(opKernelMatrix, err)
	}

	return k.a, nil
}

// GaussianBosonSamplingProbability returns the probability of detecting the
// click pattern output (every entry 0 or 1) from squeezed vacua r sent
// through U:
//
//	|haf(A_S)|² / ∏_{i=1..N} cosh(r_i),  S = {i : output[i] = 1}.
//
// Behavior highlights:
//   - An odd number of detected photons has probability 0.
//   - The empty pattern gives the vacuum probability 1/∏cosh r_i.
//
// Errors:
//   - ErrUnsupportedOccupation when any output entry exceeds 1
//     (see GaussianPatternProbability for general occupations).
//   - Everything KernelMatrix returns, ErrInvalidOccupation, evaluator errors.
func GaussianBosonSamplingProbability(u matrix.Matrix, r []float64, output Pattern, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(u); err != nil {
		return 0, samplingErrorf(opGaussianBosonSamplingProbability, err)
	}
	if err := output.validate(u.Rows()); err != nil {
		return 0, samplingErrorf(opGaussianBosonSamplingProbability, err)
	}
	for i, v := range output {
		if v > 1 {
			return 0, samplingErrorf(opGaussianBosonSamplingProbability,
				fmt.Errorf("mode %d holds %d: %w", i, v, ErrUnsupportedOccupation))
		}
	}
	k, err := newGaussianKernel(u, r, o)
	if err != nil {
		return 0, samplingErrorf(opGaussianBosonSamplingProbability, err)
	}
	p, err := k.probability(output, o)
	if err != nil {
		return 0, samplingErrorf(opGaussianBosonSamplingProbability, err)
	}

	return p, nil
}

// GaussianPatternProbability generalizes GaussianBosonSamplingProbability to
// arbitrary photon numbers n_i by repeating rows and columns of A:
//
//	|haf(A_n)|² / (∏ n_i! · ∏ cosh r_i).
//
// For 0/1 patterns the two functions agree exactly.
func GaussianPatternProbability(u matrix.Matrix, r []float64, output Pattern, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(u); err != nil {
		return 0, samplingErrorf(opGaussianPatternProbability, err)
	}
	if err := output.validate(u.Rows()); err != nil {
		return 0, samplingErrorf(opGaussianPatternProbability, err)
	}
	k, err := newGaussianKernel(u, r, o)
	if err != nil {
		return 0, samplingErrorf(opGaussianPatternProbability, err)
	}
	p, err := k.probability(output, o)
	if err != nil {
		return 0, samplingErrorf(opGaussianPatternProbability, err)
	}

	return p, nil
}
