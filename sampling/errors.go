// SPDX-License-Identifier: MIT

package sampling

import (
	"errors"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
)

var (
	// ErrInvalidShape is returned for a non-square interferometer or a
	// pattern/squeezing vector whose length differs from the mode count.
	ErrInvalidShape = matrix.ErrInvalidShape

	// ErrComputationTooLarge is returned when a submatrix or a pattern
	// enumeration exceeds the configured limits.
	ErrComputationTooLarge = hafnian.ErrComputationTooLarge

	// ErrPhotonNumberMismatch is returned when input and output patterns carry
	// different photon totals.
	ErrPhotonNumberMismatch = errors.New("sampling: input and output photon numbers differ")

	// ErrUnsupportedOccupation is returned by GaussianBosonSamplingProbability
	// when an output mode holds more than one photon.
	ErrUnsupportedOccupation = errors.New("sampling: only 0/1 occupations are supported")

	// ErrInternalInconsistency is returned when a derived quantity violates a
	// mathematical invariant: a non-unitary interferometer (under
	// WithUnitarityCheck) or a non-symmetric kernel matrix.
	ErrInternalInconsistency = errors.New("sampling: internal inconsistency")

	// ErrInvalidOccupation is returned for negative photon counts.
	ErrInvalidOccupation = errors.New("sampling: occupation numbers must be non-negative")

	// ErrInvalidSqueezing is returned for negative, NaN or infinite squeezing.
	ErrInvalidSqueezing = errors.New("sampling: squeezing parameters must be finite and non-negative")
)
