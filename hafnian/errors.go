// SPDX-License-Identifier: MIT

package hafnian

import (
	"errors"

	"github.com/katalvlaran/bosonic/matrix"
)

var (
	// ErrInvalidShape is returned for non-square input. It is the matrix
	// package sentinel, so errors.Is matches either name.
	ErrInvalidShape = matrix.ErrInvalidShape

	// ErrNilMatrix is returned for a nil input matrix.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrInvalidDimension is returned when Hafnian receives an odd-sized matrix.
	ErrInvalidDimension = errors.New("hafnian: hafnian requires an even dimension")

	// ErrComputationTooLarge is returned when the dimension exceeds the
	// configured limit (or a reference implementation's fixed cap).
	ErrComputationTooLarge = errors.New("hafnian: dimension exceeds configured limit")

	// ErrNotCountable is returned by the matching counters when an adjacency
	// entry is not a non-negative integer.
	ErrNotCountable = errors.New("hafnian: adjacency entries must be non-negative integers")
)
