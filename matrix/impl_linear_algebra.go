// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels: MatVec and the symmetric eigen-solver.
//
// Purpose:
//   - MatVec for propagating distributions through transition matrices.
//   - Eigen/EigenValues (cyclic Jacobi) for spectral connectivity tests.
//
// Notes:
//   - All kernels validate through validators.go and wrap errors via matrixErrorf.
//   - *Dense inputs use flat-slice fast paths; other Matrix values go through At.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec          = "MatVec"
	opEigen           = "Eigen"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns a *Dense copy of m; the input is never mutated.
// Complexity: O(r*c).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// MatVec computes y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols.
// Complexity: O(r*c) time, O(r) space.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, rows)

	var (
		i, j    int
		acc, mv float64
		err     error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base := i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Sweep all (p,q), p<q, in row order, annihilating A[p,q] with one rotation each.
//   - Stage 3: Stop once the off-diagonal Frobenius norm is below tol.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: absolute convergence threshold on the off-diagonal norm (typ. 1e-10..1e-12).
//   - maxSweeps: safety cap on full sweeps (each sweep is O(n^3)).
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - Matrix: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry,
//     ErrMatrixEigenFailed (off-diagonal norm ≥ tol after maxSweeps).
//
// Determinism:
//   - Fixed pivot order and update order produce identical results for identical input.
//
// Complexity:
//   - Time O(maxSweeps * n^3), Space O(n^2).
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, Matrix, error) {
	vals, q, err := jacobi(m, tol, maxSweeps, true)
	if err != nil {
		return nil, nil, err
	}

	return vals, q, nil
}

// EigenValues is Eigen without eigenvector accumulation (about half the work).
func EigenValues(m Matrix, tol float64, maxSweeps int) ([]float64, error) {
	vals, _, err := jacobi(m, tol, maxSweeps, false)

	return vals, err
}

// jacobi is the shared cyclic Jacobi kernel behind Eigen and EigenValues.
func jacobi(m Matrix, tol float64, maxSweeps int, wantVectors bool) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenSweeps
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r

	var q *Dense
	if wantVectors {
		if q, err = NewSquare(n); err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}
		for i := 0; i < n; i++ {
			q.data[i*n+i] = 1.0
		}
	}

	var (
		sweep, p, r, k     int
		app, aqq, apq      float64
		akp, akq, qkp, qkq float64
		theta, t, c, s     float64
		converged          bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		if offDiagonalNorm(a) < tol {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = a.data[p*n+r]
				if apq == 0 {
					continue // already annihilated
				}
				app = a.data[p*n+p]
				aqq = a.data[r*n+r]

				// θ = (aqq−app)/(2*apq); t = sign(θ)/(|θ|+√(θ²+1)) picks the smaller rotation.
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for k = 0; k < n; k++ {
					if k == p || k == r {
						continue
					}
					akp = a.data[k*n+p]
					akq = a.data[k*n+r]
					a.data[k*n+p] = c*akp - s*akq
					a.data[p*n+k] = a.data[k*n+p]
					a.data[k*n+r] = s*akp + c*akq
					a.data[r*n+k] = a.data[k*n+r]
				}
				a.data[p*n+p] = app - t*apq
				a.data[r*n+r] = aqq + t*apq
				a.data[p*n+r], a.data[r*n+p] = 0, 0

				if wantVectors {
					for k = 0; k < n; k++ {
						qkp = q.data[k*n+p]
						qkq = q.data[k*n+r]
						q.data[k*n+p] = c*qkp - s*qkq
						q.data[k*n+r] = s*qkp + c*qkq
					}
				}
			}
		}
	}
	if !converged && offDiagonalNorm(a) >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	vals := make([]float64, n)
	for k = 0; k < n; k++ {
		vals[k] = a.data[k*n+k]
	}

	return vals, q, nil
}

// offDiagonalNorm returns sqrt(Σ_{i<j} A[i,j]²) for a square Dense.
func offDiagonalNorm(a *Dense) float64 {
	n := a.r
	s := NormZero
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s += a.data[i*n+j] * a.data[i*n+j]
		}
	}

	return math.Sqrt(s)
}
