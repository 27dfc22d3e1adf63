// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels used by the
// critical-radius engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - NormalizeRowsL1 for building row-stochastic (Markov) matrices.
//   - MatVec for matrix–vector products.
//   - Eigen, a cyclic Jacobi eigen-solver for symmetric matrices.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric) shared by
//     every kernel so guard logic lives in one place.
//
// Determinism:
//
//	Every kernel uses fixed i→j loop orders and no map iteration, so the same
//	input always yields bit-identical output.
//
// Errors:
//
//	Kernels return package sentinels (ErrOutOfRange, ErrNaNInf, ErrAsymmetry, ...)
//	wrapped as "<Op>: <sentinel>". Match them with errors.Is.
package matrix
