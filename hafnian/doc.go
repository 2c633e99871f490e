// SPDX-License-Identifier: MIT

// Package hafnian evaluates the two #P-hard matrix functions behind photonic
// sampling: the permanent and the (loop) hafnian of complex matrices.
//
// What:
//
//   - Permanent: Ryser's formula in Gray-code order, O(2ⁿ·n).
//   - Hafnian: power-trace formula over index pairs, O(2^{n/2}·n⁴).
//   - LoopHafnian: the same summation with a diagonal (self-loop) correction.
//   - PermanentNaive, HafnianRecursive, LoopHafnianRecursive: definition-level
//     references with small fixed caps, used to cross-check the fast paths.
//   - CountPerfectMatchings, CountBipartiteMatchings: integer graph counts.
//
// Why:
//
//   - perm(U_st) gives boson-sampling amplitudes; haf(A_S) gives Gaussian
//     boson-sampling amplitudes. Package sampling builds on both.
//   - Identity: Hafnian(matrix.Bipartite(A)) == Permanent(A).
//
// Options:
//
//   - WithMaxDimension(n): reject larger inputs with ErrComputationTooLarge.
//   - WithWorkers(n), WithParallelThreshold(n): worker-pool sizing.
//   - WithContext(ctx): cancellation checked between chunks.
//
// Determinism:
//
//   - Chunk boundaries are fixed by the input size; partial sums are reduced in
//     chunk order, so the worker count never changes the floating-point result.
//
// Errors:
//
//   - ErrNilMatrix, ErrInvalidShape, ErrInvalidDimension,
//     ErrComputationTooLarge, ErrNotCountable.
package hafnian
