// Package matrix offers the complex dense matrix used by the evaluators and
// the sampling adapter.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set and a
//     finite-values numeric policy. 0×0 is legal.
//   - Induced: copy-based submatrix selection with repeated indices, the
//     building block of occupation-pattern submatrices.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, ConjTranspose, NewDiag and
//     Bipartite ([[0,A],[Aᵀ,0]]).
//   - Validators: ValidateSquare, ValidateSymmetric (complex symmetric, no
//     conjugation) and ValidateUnitary, all driven by a configurable epsilon.
//   - Random matrices: Ginibre, complex symmetric and Haar-random unitaries
//     from a deterministic seed.
//   - gonum interop: FromCMatrix and (*Dense).ToCDense.
//
// Every kernel returns a freshly allocated *Dense; operands are never mutated.
package matrix
