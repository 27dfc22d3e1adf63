// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rcrit/matrix"
)

// Components finds the connected components of the proximity graph at
// radius r (nodes i, j adjacent iff d(i,j) ≤ r).
// Components are listed by their smallest node index; members within a
// component are in ascending order.
//
// Time:   O(n²).
// Memory: O(n²) for the validated distance rows.
func Components(dm matrix.Matrix, r float64) ([][]int, error) {
	if err := validateRadius(r); err != nil {
		return nil, err
	}
	d, err := distanceRows(dm)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}

	return components(d, r), nil
}

// components is the BFS kernel behind Components and MethodComponents.
func components(d [][]float64, r float64) [][]int {
	n := len(d)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := 0; v < n; v++ {
				if !seen[v] && d[u][v] <= r {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
