// SPDX-License-Identifier: MIT

// Package hafnian: functional configuration for the evaluators.
//
// Design goals:
//   - Deterministic behavior: chunk boundaries do not depend on the worker
//     count, so every worker count produces bit-identical results.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package hafnian

import (
	"context"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDimension caps the matrix dimension accepted by Permanent,
	// Hafnian and LoopHafnian. Ryser at n=30 is ~3·10¹⁰ multiply-adds.
	DefaultMaxDimension = 30

	// HardMaxDimension is the ceiling for WithMaxDimension: subset masks are
	// uint64 and Ryser enumerates 2ⁿ of them.
	HardMaxDimension = 60

	// DefaultParallelThreshold is the smallest dimension evaluated by the
	// worker pool; smaller inputs run on the calling goroutine.
	DefaultParallelThreshold = 20

	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// ReferencePermanentLimit caps PermanentNaive (n! enumeration).
	ReferencePermanentLimit = 8

	// ReferenceHafnianLimit caps HafnianRecursive ((n-1)!! matchings).
	ReferenceHafnianLimit = 16
)

// chunkCount is the fixed number of contiguous subset ranges the 2ⁿ (or 2^(n/2))
// summation is split into once the parallel threshold is reached.
const chunkCount = 64

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDimension      = "hafnian: WithMaxDimension: n must be in [0, HardMaxDimension]"
	panicWorkers           = "hafnian: WithWorkers: n must be >= 0"
	panicParallelThreshold = "hafnian: WithParallelThreshold: n must be >= 0"
	panicNilContext        = "hafnian: WithContext: ctx must be non-nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxDim            int
	workers           int
	parallelThreshold int
	ctx               context.Context
}

// WithMaxDimension sets the largest accepted dimension; larger inputs fail
// fast with ErrComputationTooLarge instead of starting exponential work.
// Panics outside [0, HardMaxDimension].
func WithMaxDimension(n int) Option {
	if n < 0 || n > HardMaxDimension {
		panic(panicMaxDimension)
	}

	return func(o *Options) { o.maxDim = n }
}

// WithWorkers sets the worker-pool size; 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the smallest dimension evaluated in parallel.
// 0 forces the chunked path for every input (useful in tests).
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicParallelThreshold)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithContext attaches a context checked between chunks. Cancellation
// returns ctx.Err() (wrapped); the mathematics never needs it.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// MaxDimension returns the dimension limit opts resolve to. Callers that
// assemble a submatrix from other data compare against it first, so an
// oversized request fails before the submatrix is allocated.
func MaxDimension(opts ...Option) int {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o.maxDim
}

// defaultOptions returns the documented zero-configuration policy.
func defaultOptions() Options {
	return Options{
		maxDim:            DefaultMaxDimension,
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
		ctx:               context.Background(),
	}
}

// gatherOptions applies setters over the defaults (last wins; nil skipped)
// and resolves the automatic worker count.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
