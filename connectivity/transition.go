// SPDX-License-Identifier: MIT

package connectivity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rcrit/matrix"
)

// ErrInvalidDistance indicates a negative or NaN entry in a distance matrix.
var ErrInvalidDistance = errors.New("connectivity: distance must be non-negative")

// distanceRows validates dm (non-nil, square, entries ≥ 0) and returns its rows.
// Complexity: O(n²).
func distanceRows(dm matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateSquare(dm); err != nil {
		return nil, err
	}
	n := dm.Rows()
	rows := make([][]float64, n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if v, err = dm.At(i, j); err != nil {
				return nil, err
			}
			if !(v >= 0) {
				return nil, fmt.Errorf("%w: d(%d,%d)=%g", ErrInvalidDistance, i, j, v)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

// degrees returns k_i = |{j : d(i,j) ≤ r}| for every row.
func degrees(d [][]float64, r float64) []int {
	k := make([]int, len(d))
	for i, row := range d {
		for _, v := range row {
			if v <= r {
				k[i]++
			}
		}
	}

	return k
}

// TransitionMatrix builds the row-stochastic matrix of the uniform random walk
// on the proximity graph at radius r:
//
//	P[i,j] = 1/k_i if d(i,j) ≤ r, else 0.
//
// The diagonal distance is 0 so every k_i ≥ 1 and every row sums to 1.
// A fresh matrix is returned on every call.
//
// Errors: ErrInvalidRadius, ErrInvalidDistance, matrix validation errors.
// Complexity: O(n²).
func TransitionMatrix(dm matrix.Matrix, r float64) (*matrix.Dense, error) {
	if err := validateRadius(r); err != nil {
		return nil, err
	}
	d, err := distanceRows(dm)
	if err != nil {
		return nil, fmt.Errorf("TransitionMatrix: %w", err)
	}
	n := len(d)
	adj, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("TransitionMatrix: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d[i][j] <= r {
				_ = adj.Set(i, j, 1) // in range, finite
			}
		}
	}
	p, _, err := matrix.NormalizeRowsL1(adj)
	if err != nil {
		return nil, fmt.Errorf("TransitionMatrix: %w", err)
	}

	return p, nil
}

// symmetricTransition builds S = D^{-1/2}·A·D^{-1/2}, which has the same
// spectrum as P. k_i·k_j is commutative in floating point, so S is exactly symmetric.
func symmetricTransition(d [][]float64, r float64) (*matrix.Dense, error) {
	n := len(d)
	k := degrees(d, r)
	s, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d[i][j] <= r {
				_ = s.Set(i, j, 1/math.Sqrt(float64(k[i])*float64(k[j])))
			}
		}
	}

	return s, nil
}

// SpectrumByMagnitude returns the eigenvalues of the transition matrix at
// radius r, ordered by decreasing magnitude. The first entry is 1 up to
// rounding.
// Errors: as TransitionMatrix, plus matrix.ErrMatrixEigenFailed.
// Complexity: O(sweeps·n³) time, O(n²) memory; all n eigenvalues are computed.
func SpectrumByMagnitude(dm matrix.Matrix, r float64, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return spectrum(dm, r, o)
}

// spectrum is SpectrumByMagnitude with resolved options.
func spectrum(dm matrix.Matrix, r float64, o Options) ([]float64, error) {
	if err := validateRadius(r); err != nil {
		return nil, err
	}
	d, err := distanceRows(dm)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	s, err := symmetricTransition(d, r)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	vals, err := matrix.EigenValues(s, o.EigenTol, o.MaxSweeps)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	sort.SliceStable(vals, func(a, b int) bool { return math.Abs(vals[a]) > math.Abs(vals[b]) })

	return vals, nil
}

// SecondEigenvalue returns λ₂, the second-largest eigenvalue magnitude of the
// transition matrix at radius r. A single node has no second eigenvalue; 0 is
// returned for n = 1.
func SecondEigenvalue(dm matrix.Matrix, r float64, opts ...Option) (float64, error) {
	vals, err := SpectrumByMagnitude(dm, r, opts...)
	if err != nil {
		return 0, err
	}
	if len(vals) < 2 {
		return 0, nil
	}

	return math.Abs(vals[1]), nil
}
