// SPDX-License-Identifier: MIT

package sampling

import (
	"math"
	"runtime"

	"github.com/katalvlaran/bosonic/hafnian"
)

const (
	// DefaultEpsilon is the tolerance for the unitarity and symmetry checks.
	DefaultEpsilon = 1e-9

	// DefaultMaxPatterns caps Patterns and the distribution functions.
	DefaultMaxPatterns = 1 << 20

	// DefaultWorkers selects runtime.GOMAXPROCS(0) distribution workers.
	DefaultWorkers = 0
)

const (
	panicEpsilon     = "sampling: WithEpsilon: eps must be finite and >= 0"
	panicWorkers     = "sampling: WithWorkers: n must be >= 0"
	panicMaxPatterns = "sampling: WithMaxPatterns: n must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	eps          float64
	checkUnitary bool
	evalOpts     []hafnian.Option
	workers      int
	maxPatterns  int
}

// WithEpsilon sets the tolerance of the unitarity and kernel-symmetry checks.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilon)
	}

	return func(o *Options) { o.eps = eps }
}

// WithUnitarityCheck verifies U·U† = I within epsilon before evaluating.
// A failing check returns ErrInternalInconsistency.
func WithUnitarityCheck() Option {
	return func(o *Options) { o.checkUnitary = true }
}

// WithEvaluator forwards options to the permanent/hafnian evaluator
// (size limit, worker count, context). Repeated calls accumulate.
func WithEvaluator(opts ...hafnian.Option) Option {
	return func(o *Options) { o.evalOpts = append(o.evalOpts, opts...) }
}

// WithWorkers sets the distribution worker-pool size; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithMaxPatterns caps the number of patterns Patterns may enumerate.
func WithMaxPatterns(n int) Option {
	if n <= 0 {
		panic(panicMaxPatterns)
	}

	return func(o *Options) { o.maxPatterns = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:         DefaultEpsilon,
		workers:     DefaultWorkers,
		maxPatterns: DefaultMaxPatterns,
	}
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
