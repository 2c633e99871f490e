// SPDX-License-Identifier: MIT
// Package matrix - deterministic random matrices.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every call builds its own stream.
package matrix

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer). Use it to obtain independent, reproducible streams,
// e.g. one random matrix per test case.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// RandomComplex returns an r×c matrix with i.i.d. standard complex Gaussian
// entries (real and imaginary parts N(0, 1/2)), i.e. a Ginibre matrix.
// Errors: ErrInvalidDimensions for negative shapes.
func RandomComplex(rows, cols int, seed int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rngFromSeed(seed)
	scale := 1 / math.Sqrt2
	for k := range m.data {
		m.data[k] = complex(rng.NormFloat64()*scale, rng.NormFloat64()*scale)
	}

	return m, nil
}

// RandomSymmetric returns a random complex symmetric n×n matrix (A = Aᵀ),
// built as (G + Gᵀ)/2 from a Ginibre G.
func RandomSymmetric(n int, seed int64) (*Dense, error) {
	g, err := RandomComplex(n, n, seed)
	if err != nil {
		return nil, err
	}
	var i, j int
	var avg complex128
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			avg = (g.data[i*n+j] + g.data[j*n+i]) / 2
			g.data[i*n+j] = avg
			g.data[j*n+i] = avg
		}
	}

	return g, nil
}

// RandomUnitary returns an n×n unitary drawn from the Haar measure.
//
// Implementation:
//   - Stage 1: draw a Ginibre matrix G (RandomComplex).
//   - Stage 2: G = Q·R with diag(R) > 0 (QR); Q is Haar-distributed.
//
// Errors: ErrInvalidDimensions; ErrRankDeficient only with probability zero.
// Complexity: O(n³).
func RandomUnitary(n int, seed int64) (*Dense, error) {
	g, err := RandomComplex(n, n, seed)
	if err != nil {
		return nil, err
	}
	q, _, err := QR(g)
	if err != nil {
		return nil, err
	}

	return q, nil
}
