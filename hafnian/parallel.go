// SPDX-License-Identifier: MIT

package hafnian

import (
	"fmt"
	"sync"
)

// hafnianErrorf wraps err with an operation tag: "<op>: <err>".
func hafnianErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rangeKernel sums the contribution of every index in [lo, hi).
type rangeKernel func(lo, hi uint64) complex128

// chunkBounds returns the c-th of chunks contiguous slices of [lo, hi).
// The first span%chunks slices are one element longer.
func chunkBounds(lo, hi, chunks, c uint64) (uint64, uint64) {
	span := hi - lo
	size, rem := span/chunks, span%chunks
	a := lo + c*size + min(c, rem)
	b := a + size
	if c < rem {
		b++
	}

	return a, b
}

// sumRange evaluates kernel over [lo, hi).
//
// Implementation:
//   - Serial: one call on the calling goroutine after a ctx check.
//   - Parallel: the range is cut into min(chunkCount, hi-lo) contiguous chunks,
//     fed to o.workers goroutines; partials land in a slice indexed by chunk
//     and are summed in chunk order.
//
// Determinism:
//   - Chunk boundaries depend only on the range, never on the worker count,
//     so results are bit-identical for any WithWorkers value.
//
// Errors:
//   - ctx.Err() when the context is cancelled before or during the run.
func sumRange(o Options, lo, hi uint64, parallel bool, kernel rangeKernel) (complex128, error) {
	if err := o.ctx.Err(); err != nil {
		return 0, err
	}
	if hi <= lo {
		return 0, nil
	}
	if !parallel {
		return kernel(lo, hi), nil
	}

	chunks := min(uint64(chunkCount), hi-lo)
	partial := make([]complex128, chunks)
	jobs := make(chan uint64)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	workers := min(o.workers, int(chunks))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if err := o.ctx.Err(); err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				a, b := chunkBounds(lo, hi, chunks, c)
				partial[c] = kernel(a, b)
			}
		}()
	}

feed:
	for c := uint64(0); c < chunks; c++ {
		select {
		case jobs <- c:
		case <-o.ctx.Done():
			errOnce.Do(func() { firstErr = o.ctx.Err() })
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return 0, firstErr
	}
	var total complex128
	for _, p := range partial {
		total += p
	}

	return total, nil
}
