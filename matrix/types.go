// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface and shared numeric constants.
package matrix

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial value for dot-product style accumulators.
const ZeroSum = 0.0

// DefaultEigenTolerance is the off-diagonal threshold used by callers that
// have no specific accuracy requirement for Eigen.
const DefaultEigenTolerance = 1e-12

// DefaultEigenSweeps is the sweep budget used together with DefaultEigenTolerance.
// Cyclic Jacobi converges quadratically; 50 sweeps is far beyond what
// well-conditioned symmetric inputs of a few hundred rows need.
const DefaultEigenSweeps = 50

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
