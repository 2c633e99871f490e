// SPDX-License-Identifier: MIT

package hafnian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bosonic/matrix"
)

// MaxExactCount is the largest matching count returned. Counts are read off a
// float64 hafnian or permanent, which stops representing every integer
// above 2⁵³.
const MaxExactCount = 1 << 53

const (
	opCountPerfectMatchings   = "CountPerfectMatchings"
	opCountBipartiteMatchings = "CountBipartiteMatchings"
)

// CountPerfectMatchings returns the number of perfect matchings of the
// (multi)graph with adjacency matrix adj, i.e. haf(adj) rounded to an integer.
// Entries of the strict upper triangle must be non-negative integers (edge
// multiplicities); the lower triangle and diagonal are ignored.
//
// Errors: everything Hafnian returns, plus ErrNotCountable, and
// ErrComputationTooLarge when the count exceeds MaxExactCount.
func CountPerfectMatchings(adj matrix.Matrix, opts ...Option) (int64, error) {
	if err := matrix.ValidateSquare(adj); err != nil {
		return 0, hafnianErrorf(opCountPerfectMatchings, err)
	}
	n := adj.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := checkCountable(adj, i, j); err != nil {
				return 0, hafnianErrorf(opCountPerfectMatchings, err)
			}
		}
	}
	h, err := Hafnian(adj, opts...)
	if err != nil {
		return 0, hafnianErrorf(opCountPerfectMatchings, err)
	}

	return exactCount(opCountPerfectMatchings, h)
}

// CountBipartiteMatchings returns the number of perfect matchings of the
// bipartite graph with n×n biadjacency matrix biadj, i.e. perm(biadj).
//
// Errors: everything Permanent returns, plus ErrNotCountable, and
// ErrComputationTooLarge when the count exceeds MaxExactCount.
func CountBipartiteMatchings(biadj matrix.Matrix, opts ...Option) (int64, error) {
	if err := matrix.ValidateSquare(biadj); err != nil {
		return 0, hafnianErrorf(opCountBipartiteMatchings, err)
	}
	n := biadj.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := checkCountable(biadj, i, j); err != nil {
				return 0, hafnianErrorf(opCountBipartiteMatchings, err)
			}
		}
	}
	p, err := Permanent(biadj, opts...)
	if err != nil {
		return 0, hafnianErrorf(opCountBipartiteMatchings, err)
	}

	return exactCount(opCountBipartiteMatchings, p)
}

// exactCount rounds a non-negative integer-valued result to int64.
func exactCount(op string, v complex128) (int64, error) {
	c := math.Round(real(v))
	if c > MaxExactCount {
		return 0, hafnianErrorf(op, fmt.Errorf("count %.0f above 2^53: %w", c, ErrComputationTooLarge))
	}

	return int64(c), nil
}

func checkCountable(m matrix.Matrix, i, j int) error {
	v, err := m.At(i, j)
	if err != nil {
		return err
	}
	re := real(v)
	if imag(v) != 0 || re < 0 || re != math.Trunc(re) {
		return fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNotCountable)
	}

	return nil
}
