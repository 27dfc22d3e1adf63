// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"github.com/katalvlaran/rcrit/matrix"
)

// Oracle answers "is the network connected at radius R?" for a distance matrix.
// It holds only immutable configuration and is safe for concurrent use.
type Oracle struct {
	opts Options
}

// NewOracle returns an Oracle configured by opts on top of DefaultOptions.
// Errors: ErrBadEpsilon, ErrBadEigenTolerance, ErrBadMethod.
func NewOracle(opts ...Option) (*Oracle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Oracle{opts: o}, nil
}

// Options returns the oracle's resolved configuration.
func (o *Oracle) Options() Options { return o.opts }

// IsConnected reports whether every node reaches every other node when the
// broadcasting radius is r.
//
// Implementation:
//   - Stage 1: validate r (ErrInvalidRadius) and dm (square, non-negative).
//   - Stage 2: n = 1 is trivially connected; no eigen computation.
//   - Stage 3: MethodSpectral ⇒ λ₂ < 1 − ε; MethodComponents ⇒ exactly one BFS component.
//
// Complexity: spectral O(sweeps·n³); components O(n²).
// The spectral method solves the full eigenproblem on every call and becomes
// slow beyond a few hundred nodes (seconds per bisection at n = 300); use
// MethodComponents for large networks.
func (o *Oracle) IsConnected(dm matrix.Matrix, r float64) (bool, error) {
	if err := validateRadius(r); err != nil {
		return false, err
	}
	if err := matrix.ValidateSquare(dm); err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}
	if dm.Rows() == 1 {
		return true, nil
	}

	if o.opts.Method == MethodComponents {
		d, err := distanceRows(dm)
		if err != nil {
			return false, fmt.Errorf("IsConnected: %w", err)
		}
		return len(components(d, r)) == 1, nil
	}

	vals, err := spectrum(dm, r, o.opts)
	if err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}
	lambda2 := vals[1]
	if lambda2 < 0 {
		lambda2 = -lambda2
	}

	return lambda2 < 1-o.opts.Epsilon, nil
}

// defaultOracle backs the package-level IsConnected.
var defaultOracle = &Oracle{opts: DefaultOptions()}

// IsConnected runs the default spectral oracle (ε = DefaultEpsilon).
func IsConnected(dm matrix.Matrix, r float64) (bool, error) {
	return defaultOracle.IsConnected(dm, r)
}
