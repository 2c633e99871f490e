// Package bosonic computes the matrix functions behind photonic quantum
// advantage experiments, and the detection probabilities built on them.
//
// 🚀 What is bosonic?
//
//	A pure-Go library (plus a small CLI) that brings together:
//		• Complex dense matrices: validation, products, QR, Haar-random unitaries
//		• Permanent: Ryser's formula in Gray-code order, parallel above a threshold
//		• Hafnian and loop hafnian: power-trace summation over index pairs
//		• Boson sampling: |perm(U_st)|² / (∏in! ∏out!)
//		• Gaussian boson sampling: |haf(A_S)|² / ∏cosh r, A = U·diag(tanh r)·Uᵀ
//
// ✨ Why choose bosonic?
//
//   - Exact: no sampling, no approximation, deterministic for any worker count
//   - Bounded: configurable size limits fail fast before exponential work starts
//   - Interoperable: gonum CDense in and out
//
// Under the hood, everything is organized under three packages:
//
//	matrix/         complex Dense type, validators, linear algebra, random unitaries
//	hafnian/        Permanent, Hafnian, LoopHafnian, reference evaluators, matching counts
//	sampling/       boson and Gaussian boson sampling probabilities, pattern enumeration
//	cmd/bosonprob/  command-line front end over JSON matrix files
//
// Quick ASCII example (Hong–Ou–Mandel):
//
//	 1 ──┐   ┌── 2 or 0
//	     ╞═══╡  50:50
//	 1 ──┘   └── 0 or 2
//
//	two photons entering a balanced beam splitter always leave together.
//
//	go get github.com/katalvlaran/bosonic
package bosonic
