// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/bosonic/hafnian"
)

// Pattern is a mode occupation vector: Pattern[i] photons in mode i.
type Pattern []int

// Outcome pairs a pattern with its probability.
type Outcome struct {
	Pattern     Pattern
	Probability float64
}

// Total returns the photon number Σ p[i].
func (p Pattern) Total() int {
	t := 0
	for _, v := range p {
		t += v
	}

	return t
}

// Indices expands the pattern into mode indices repeated by occupation:
// (2,0,1) → [0 0 2]. This is the row/column selection for submatrices.
// The result has Total() entries; bound the total before expanding
// untrusted patterns.
func (p Pattern) Indices() []int {
	idx := make([]int, 0, p.Total())
	for i, v := range p {
		for k := 0; k < v; k++ {
			idx = append(idx, i)
		}
	}

	return idx
}

// FactorialProduct returns ∏ p[i]!.
func (p Pattern) FactorialProduct() float64 {
	f := 1.0
	for _, v := range p {
		for k := 2; k <= v; k++ {
			f *= float64(k)
		}
	}

	return f
}

// String renders the pattern in ket notation, "|1101⟩", switching to
// comma-separated counts when any mode holds ten or more photons.
func (p Pattern) String() string {
	sep := ""
	for _, v := range p {
		if v > 9 {
			sep = ","
			break
		}
	}
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return "|" + strings.Join(parts, sep) + "⟩"
}

// validate checks length and sign, and that Total cannot overflow int.
func (p Pattern) validate(modes int) error {
	if len(p) != modes {
		return fmt.Errorf("pattern length %d, want %d: %w", len(p), modes, ErrInvalidShape)
	}
	t := 0
	for i, v := range p {
		if v < 0 {
			return fmt.Errorf("mode %d holds %d: %w", i, v, ErrInvalidOccupation)
		}
		if v > math.MaxInt-t {
			return fmt.Errorf("mode %d: photon total overflows: %w", i, ErrComputationTooLarge)
		}
		t += v
	}

	return nil
}

// checkDimension rejects a photon total above the evaluator's dimension
// limit before any submatrix of that size is built.
func checkDimension(total int, o Options) error {
	if limit := hafnian.MaxDimension(o.evalOpts...); total > limit {
		return fmt.Errorf("%d photons, limit %d: %w", total, limit, ErrComputationTooLarge)
	}

	return nil
}

// Patterns returns every occupation pattern of the given number of modes
// holding exactly photons photons, in lexicographically descending order
// (all photons in mode 0 first, all photons in the last mode last).
//
// The count is C(photons+modes-1, modes-1). Enumerations above the
// configured limit (WithMaxPatterns) fail with ErrComputationTooLarge.
//
// Behavior highlights:
//   - Patterns(0, 0) is the single empty pattern; Patterns(0, k>0) is empty.
func Patterns(modes, photons int, opts ...Option) ([]Pattern, error) {
	if modes < 0 {
		return nil, fmt.Errorf("Patterns: modes=%d: %w", modes, ErrInvalidShape)
	}
	if photons < 0 {
		return nil, fmt.Errorf("Patterns: photons=%d: %w", photons, ErrInvalidOccupation)
	}
	if modes == 0 {
		if photons == 0 {
			return []Pattern{{}}, nil
		}

		return []Pattern{}, nil
	}

	o := gatherOptions(opts...)
	n, k := photons+modes-1, modes-1
	// The float estimate guards the exact int count against overflow.
	if combin.GeneralizedBinomial(float64(n), float64(k)) > 2*float64(o.maxPatterns) {
		return nil, fmt.Errorf("Patterns: C(%d,%d) patterns: %w", n, k, ErrComputationTooLarge)
	}
	count := combin.Binomial(n, k)
	if count > o.maxPatterns {
		return nil, fmt.Errorf("Patterns: %d patterns: %w", count, ErrComputationTooLarge)
	}

	out := make([]Pattern, 0, count)
	cur := make(Pattern, modes)
	var fill func(mode, left int)
	fill = func(mode, left int) {
		if mode == modes-1 {
			cur[mode] = left
			out = append(out, append(Pattern(nil), cur...))
			return
		}
		for c := left; c >= 0; c-- {
			cur[mode] = c
			fill(mode+1, left-c)
		}
	}
	fill(0, photons)

	return out, nil
}
