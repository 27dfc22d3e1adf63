// SPDX-License-Identifier: MIT

package radius

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rcrit/matrix"
)

// Bracket is a known-valid search interval [Low, High] for the critical radius.
type Bracket struct {
	Low, High float64
}

// Degenerate reports whether the bracket has collapsed to a single value.
func (b Bracket) Degenerate() bool { return b.Low == b.High }

// Width returns High − Low.
func (b Bracket) Width() float64 { return b.High - b.Low }

// Mid returns (Low + High)/2.
func (b Bracket) Mid() float64 { return (b.Low + b.High) / 2 }

// String renders the bracket as "[low, high]".
func (b Bracket) String() string { return fmt.Sprintf("[%g, %g]", b.Low, b.High) }

// FindBracket derives the initial bracket from the distance matrix alone.
//
// Implementation:
//   - low: for each row take the smallest off-diagonal distance; keep the maximum.
//   - high: for each row take the largest distance; keep the minimum.
//
// A single node yields the degenerate bracket (0, 0).
// Errors: matrix validation errors; ErrInvalidDistance for negative/NaN entries.
// Complexity: O(n²).
func FindBracket(dm matrix.Matrix) (Bracket, error) {
	if err := matrix.ValidateSquare(dm); err != nil {
		return Bracket{}, fmt.Errorf("FindBracket: %w", err)
	}
	n := dm.Rows()
	if n == 1 {
		return Bracket{}, nil
	}

	low, high := 0.0, math.Inf(1)
	var (
		i, j              int
		v, rowMin, rowMax float64
		err               error
	)
	for i = 0; i < n; i++ {
		rowMin, rowMax = math.Inf(1), 0
		for j = 0; j < n; j++ {
			if v, err = dm.At(i, j); err != nil {
				return Bracket{}, fmt.Errorf("FindBracket: %w", err)
			}
			if !(v >= 0) {
				return Bracket{}, fmt.Errorf("FindBracket: %w: d(%d,%d)=%g", ErrInvalidDistance, i, j, v)
			}
			if v > rowMax {
				rowMax = v
			}
			if j != i && v < rowMin {
				rowMin = v
			}
		}
		low = math.Max(low, rowMin)
		high = math.Min(high, rowMax)
	}

	return Bracket{Low: low, High: high}, nil
}
