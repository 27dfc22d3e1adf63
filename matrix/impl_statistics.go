// SPDX-License-Identifier: MIT
// Package matrix - row statistics.
//
// Purpose:
//   - NormalizeRowsL1 turns non-negative weight rows into probability rows (Markov chains).
//   - RowSums exposes the per-row totals used to verify stochasticity.

package matrix

import (
	"fmt"
	"math"
)

// NormalizeRowsL1 returns Y where each row i is scaled to L1-norm = 1, plus the
// original per-row L1 norms.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms Σ_j |x_ij| in fixed i→j order.
//   - Stage 3: Scale every row by 1/norm; rows with norm==0 stay zero rows.
//
// Behavior highlights:
//   - Non-negative input rows become rows of a row-stochastic matrix.
//   - X is never mutated; Y is a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors for non-Dense inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	Y, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	r, c := Y.r, Y.c
	norms := make([]float64, r)
	var (
		i, j int
		s    float64
	)
	for i = 0; i < r; i++ {
		s = NormZero
		base := i * c
		for j = 0; j < c; j++ {
			s += math.Abs(Y.data[base+j])
		}
		norms[i] = s
		if s == 0 {
			continue // degenerate row stays zero
		}
		inv := 1.0 / s
		for j = 0; j < c; j++ {
			Y.data[base+j] *= inv
		}
	}

	return Y, norms, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("RowSums: %w", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}
