// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
)

const (
	opTransitionAmplitude      = "TransitionAmplitude"
	opBosonSamplingProbability = "BosonSamplingProbability"
)

// samplingErrorf wraps err with an operation tag: "<op>: <err>".
func samplingErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// interferometer validates U (square, optionally unitary) and returns it as
// *Dense together with the mode count.
func interferometer(u matrix.Matrix, o Options) (*matrix.Dense, int, error) {
	if err := matrix.ValidateSquare(u); err != nil {
		return nil, 0, err
	}
	d, err := matrix.AsDense(u)
	if err != nil {
		return nil, 0, err
	}
	if o.checkUnitary {
		if err = matrix.ValidateUnitary(d, o.eps); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
		}
	}

	return d, d.Rows(), nil
}

// TransitionAmplitude returns ⟨output|U|input⟩ for Fock states of
// indistinguishable photons: perm(U_st)/√(∏ input_j! · ∏ output_i!), where
// U_st repeats row i of U output[i] times and column j input[j] times.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square U or pattern length ≠ N).
//   - ErrInvalidOccupation, ErrPhotonNumberMismatch.
//   - ErrInternalInconsistency (non-unitary U under WithUnitarityCheck).
//   - Evaluator errors (ErrComputationTooLarge, context cancellation).
func TransitionAmplitude(u matrix.Matrix, input, output Pattern, opts ...Option) (complex128, error) {
	o := gatherOptions(opts...)
	amp, err := transitionAmplitude(u, input, output, o)
	if err != nil {
		return 0, samplingErrorf(opTransitionAmplitude, err)
	}

	return amp, nil
}

func transitionAmplitude(u matrix.Matrix, input, output Pattern, o Options) (complex128, error) {
	d, n, err := interferometer(u, o)
	if err != nil {
		return 0, err
	}
	if err = input.validate(n); err != nil {
		return 0, fmt.Errorf("input: %w", err)
	}
	if err = output.validate(n); err != nil {
		return 0, fmt.Errorf("output: %w", err)
	}
	if in, out := input.Total(), output.Total(); in != out {
		return 0, fmt.Errorf("%d in, %d out: %w", in, out, ErrPhotonNumberMismatch)
	}
	if err = checkDimension(input.Total(), o); err != nil {
		return 0, err
	}

	sub, err := d.Induced(output.Indices(), input.Indices())
	if err != nil {
		return 0, err
	}
	p, err := hafnian.Permanent(sub, o.evalOpts...)
	if err != nil {
		return 0, err
	}
	norm := math.Sqrt(input.FactorialProduct() * output.FactorialProduct())

	return p / complex(norm, 0), nil
}

// BosonSamplingProbability returns the probability that input photons
// leaving interferometer U are detected in the output pattern:
//
//	|perm(U_st)|² / (∏ input_j! · ∏ output_i!).
//
// No renormalization is applied; a unitary U yields a probability in [0, 1].
// Errors are those of TransitionAmplitude.
//
// Complexity: O(2^m·m) for m photons.
func BosonSamplingProbability(u matrix.Matrix, input, output Pattern, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	amp, err := transitionAmplitude(u, input, output, o)
	if err != nil {
		return 0, samplingErrorf(opBosonSamplingProbability, err)
	}

	return real(amp)*real(amp) + imag(amp)*imag(amp), nil
}
