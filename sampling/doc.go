// SPDX-License-Identifier: MIT

// Package sampling turns interferometers and photon patterns into detection
// probabilities by delegating the #P-hard part to package hafnian.
//
// Boson sampling (Fock input, photon-number-resolving output):
//
//	P(input → output) = |perm(U_st)|² / (∏ input_j! · ∏ output_i!)
//
// where U_st repeats row i of U output[i] times and column j input[j] times.
//
// Gaussian boson sampling (single-mode squeezed vacua r through U, zero
// displacement):
//
//	A = U·diag(tanh r)·Uᵀ
//	P(n) = |haf(A_n)|² / (∏ n_i! · ∏ cosh r_i)
//
// GaussianBosonSamplingProbability is the 0/1 (threshold-like) form and rejects
// higher occupations; GaussianPatternProbability accepts any occupation.
//
// Conventions:
//   - Patterns are []int occupation vectors of length N (mode count).
//   - Input/output photon totals must agree (ErrPhotonNumberMismatch).
//   - Odd photon totals in GBS have probability 0.
//   - Probabilities are never renormalized. WithUnitarityCheck rejects a
//     non-unitary U up front.
//
// Enumeration:
//   - Patterns lists every pattern of a given photon number;
//     BosonSamplingDistribution and GaussianDistribution evaluate them on a
//     worker pool, preserving pattern order.
package sampling
