// SPDX-License-Identifier: MIT

package connectivity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rcrit/matrix"
)

// Sentinel errors returned by the connectivity package.
var (
	// ErrInvalidRadius indicates a negative or NaN radius.
	ErrInvalidRadius = errors.New("connectivity: radius must be a non-negative number")

	// ErrBadEpsilon indicates an epsilon outside (0, 1).
	ErrBadEpsilon = errors.New("connectivity: epsilon must be in (0, 1)")

	// ErrBadEigenTolerance indicates a non-positive or non-finite Jacobi tolerance.
	ErrBadEigenTolerance = errors.New("connectivity: eigen tolerance must be finite and positive")

	// ErrBadMethod indicates an unknown Method value.
	ErrBadMethod = errors.New("connectivity: unknown method")
)

// DefaultEpsilon is the default safety band below 1 for the λ₂ test.
const DefaultEpsilon = 1e-9

// Method selects how the oracle decides connectivity.
type Method int

const (
	// MethodSpectral tests λ₂ < 1 − ε on the transition matrix.
	MethodSpectral Method = iota

	// MethodComponents counts proximity-graph components with BFS.
	MethodComponents
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodSpectral:
		return "spectral"
	case MethodComponents:
		return "components"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "spectral" / "components" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "spectral":
		return MethodSpectral, nil
	case "components":
		return MethodComponents, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMethod, s)
	}
}

// Options configures an Oracle.
//
// Epsilon      – safety band: connected iff λ₂ < 1 − Epsilon. Must be in (0, 1).
// EigenTol     – off-diagonal convergence threshold for the Jacobi solver.
// MaxSweeps    – sweep budget for the Jacobi solver.
// Method       – MethodSpectral (default) or MethodComponents.
type Options struct {
	Epsilon   float64
	EigenTol  float64
	MaxSweeps int
	Method    Method
}

// Option is a functional option for NewOracle.
type Option func(*Options)

// WithEpsilon sets the λ₂ safety band.
func WithEpsilon(eps float64) Option { return func(o *Options) { o.Epsilon = eps } }

// WithEigenTolerance sets the Jacobi convergence threshold.
func WithEigenTolerance(tol float64) Option { return func(o *Options) { o.EigenTol = tol } }

// WithMaxSweeps sets the Jacobi sweep budget.
func WithMaxSweeps(n int) Option { return func(o *Options) { o.MaxSweeps = n } }

// WithMethod selects the decision method.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// DefaultOptions returns the spectral method with DefaultEpsilon and the
// matrix package's default eigen tolerance and sweep budget.
func DefaultOptions() Options {
	return Options{
		Epsilon:   DefaultEpsilon,
		EigenTol:  matrix.DefaultEigenTolerance,
		MaxSweeps: matrix.DefaultEigenSweeps,
		Method:    MethodSpectral,
	}
}

// validate checks option ranges.
func (o Options) validate() error {
	if !(o.Epsilon > 0 && o.Epsilon < 1) {
		return fmt.Errorf("%w: got %g", ErrBadEpsilon, o.Epsilon)
	}
	if !(o.EigenTol > 0) || math.IsInf(o.EigenTol, 0) {
		return fmt.Errorf("%w: got %g", ErrBadEigenTolerance, o.EigenTol)
	}
	if o.Method != MethodSpectral && o.Method != MethodComponents {
		return fmt.Errorf("%w: %d", ErrBadMethod, int(o.Method))
	}

	return nil
}

// validateRadius rejects negative and NaN radii.
func validateRadius(r float64) error {
	if !(r >= 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, r)
	}

	return nil
}
