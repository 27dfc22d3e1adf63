// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/rcrit/matrix"
)

// DistanceMatrix returns the n×n matrix of pairwise Euclidean distances.
//
// Implementation:
//   - Stage 1: reject an empty set (ErrEmptyNodeSet).
//   - Stage 2: for i<j compute Distance(i,j) once and write both (i,j) and (j,i).
//
// The diagonal stays exactly zero; symmetry is bit-exact.
// Complexity: O(n²) time and memory.
func DistanceMatrix(ns NodeSet) (*matrix.Dense, error) {
	n := ns.Len()
	if n == 0 {
		return nil, ErrEmptyNodeSet
	}
	dm, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("DistanceMatrix: %w", err)
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(ns.pts[i], ns.pts[j])
			// Coordinates are finite, so Set can only fail on overflow to +Inf.
			if err = dm.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("DistanceMatrix: %w", err)
			}
			_ = dm.Set(j, i, d)
		}
	}

	return dm, nil
}
