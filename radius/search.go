// SPDX-License-Identifier: MIT

package radius

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rcrit/connectivity"
	"github.com/katalvlaran/rcrit/geom"
	"github.com/katalvlaran/rcrit/matrix"
)

// Sentinel errors returned by the radius package.
var (
	// ErrInvalidTolerance indicates a tolerance that is not a positive number.
	ErrInvalidTolerance = errors.New("radius: tolerance must be positive")

	// ErrInvalidDistance indicates a negative or NaN entry in a distance matrix.
	ErrInvalidDistance = errors.New("radius: distance must be non-negative")

	// ErrNilTester indicates a typed-nil *connectivity.Oracle passed to WithTester.
	// A plain nil tester selects the default oracle.
	ErrNilTester = errors.New("radius: connectivity tester is nil")
)

const (
	// DefaultTolerance is the default final bracket width.
	DefaultTolerance = 0.05

	// MaxIterations caps the bisection steps. Halving a float64 interval stops
	// making progress long before this many steps.
	MaxIterations = 1100
)

// Tester decides connectivity of a distance matrix at a radius.
// *connectivity.Oracle satisfies it.
type Tester interface {
	IsConnected(dm matrix.Matrix, r float64) (bool, error)
}

// Options configures the search.
//
// Tolerance – final bracket width; must be > 0. Default DefaultTolerance.
// Tester    – connectivity decision; default is the spectral oracle.
type Options struct {
	Tolerance float64
	Tester    Tester
}

// Option is a functional option for FindCriticalRadius/FromDistances.
type Option func(*Options)

// WithTolerance sets the final bracket width.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithTester replaces the connectivity decision (e.g. an Oracle with a custom ε).
func WithTester(t Tester) Option { return func(o *Options) { o.Tester = t } }

// Result is the outcome of one critical-radius search.
type Result struct {
	Radius      float64 // estimate of Rc
	Initial     Bracket // bracket from FindBracket
	Final       Bracket // bracket after bisection
	Evaluations int     // connectivity tests performed
	Degenerate  bool    // Initial.Low == Initial.High; Radius is exact
}

// Iterations returns the number of bisection steps needed to shrink b to
// width ≤ tol: max(0, ⌈log2(width/tol)⌉), capped at MaxIterations.
// Degenerate brackets need none.
func Iterations(b Bracket, tol float64) int {
	w := b.Width()
	if w <= 0 || w <= tol {
		return 0
	}
	k := math.Ceil(math.Log2(w / tol))
	if !(k < MaxIterations) {
		return MaxIterations
	}

	return int(k)
}

// FindCriticalRadius builds the distance matrix of ns and runs FromDistances.
func FindCriticalRadius(ns geom.NodeSet, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	dm, err := geom.DistanceMatrix(ns)
	if err != nil {
		return Result{}, fmt.Errorf("FindCriticalRadius: %w", err)
	}

	return search(dm, o)
}

// FromDistances estimates the critical radius from a precomputed distance matrix.
//
// Implementation:
//   - Stage 1: bracket via FindBracket; a degenerate bracket is returned as exact.
//   - Stage 2: k = Iterations(bracket, tol) bisection steps; each step tests the
//     midpoint M and moves high (connected) or low (not connected) to M.
//   - Stage 3: return the last midpoint.
//
// When k is zero on a non-degenerate bracket (already narrower than tol)
// the bracket midpoint is returned without any test. Bisection also stops
// once the midpoint can no longer split the bracket in float64.
//
// Errors: ErrInvalidTolerance (also when width/tol overflows), ErrNilTester,
// bracket errors, tester errors (propagated unchanged, never retried).
func FromDistances(dm matrix.Matrix, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}

	return search(dm, o)
}

// resolve applies opts over the defaults and validates the result.
func resolve(opts []Option) (Options, error) {
	o := Options{Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return o, fmt.Errorf("%w: got %g", ErrInvalidTolerance, o.Tolerance)
	}
	if o.Tester == nil {
		oracle, err := connectivity.NewOracle()
		if err != nil {
			return o, err
		}
		o.Tester = oracle
	}

	return o, nil
}

// search is the shared bisection kernel.
func search(dm matrix.Matrix, o Options) (Result, error) {
	if isNilTester(o.Tester) {
		return Result{}, ErrNilTester
	}
	b, err := FindBracket(dm)
	if err != nil {
		return Result{}, err
	}
	res := Result{Initial: b, Final: b}
	if b.Degenerate() {
		res.Radius = b.Low
		res.Degenerate = true
		return res, nil
	}

	if math.IsInf(b.Width()/o.Tolerance, 0) {
		return Result{}, fmt.Errorf("%w: width %g / tolerance %g overflows", ErrInvalidTolerance, b.Width(), o.Tolerance)
	}

	k := Iterations(b, o.Tolerance)
	mid := b.Mid()
	var ok bool
	for it := 0; it < k; it++ {
		m := b.Mid()
		if m <= b.Low || m >= b.High {
			break
		}
		mid = m
		if ok, err = o.Tester.IsConnected(dm, mid); err != nil {
			return Result{}, fmt.Errorf("bisection step %d (r=%g): %w", it, mid, err)
		}
		res.Evaluations++
		if ok {
			b.High = mid
		} else {
			b.Low = mid
		}
	}
	res.Radius = mid
	res.Final = b

	return res, nil
}

// isNilTester catches both a nil interface and a typed-nil *connectivity.Oracle.
func isNilTester(t Tester) bool {
	if t == nil {
		return true
	}
	o, ok := t.(*connectivity.Oracle)

	return ok && o == nil
}
