// SPDX-License-Identifier: MIT

package density

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rcrit/geom"
	opensimplex "github.com/ojrac/opensimplex-go"
)

var (
	// ErrNilFunc indicates a nil density function.
	ErrNilFunc = errors.New("density: nil density function")

	// ErrLengthMismatch indicates coordinate slices of different lengths.
	ErrLengthMismatch = errors.New("density: coordinate slices differ in length")

	// ErrNegativeDensity indicates a negative or NaN density value.
	ErrNegativeDensity = errors.New("density: value is negative or NaN")

	// ErrZeroDensity indicates a density that vanishes on the whole scan grid.
	ErrZeroDensity = errors.New("density: density is zero everywhere on the grid")

	// ErrBadGrid indicates a scan grid with fewer than two steps per axis or a bad margin.
	ErrBadGrid = errors.New("density: invalid scan grid")

	// ErrBadParameter indicates an invalid constructor argument.
	ErrBadParameter = errors.New("density: invalid parameter")
)

const (
	// DefaultScanSteps is the number of grid points per axis used by ScanMax callers
	// that have no better resolution in mind.
	DefaultScanSteps = 201

	// DefaultMargin inflates the grid maximum by 5%.
	DefaultMargin = 0.05
)

// Func is a node density over the deployment domain: (x, y) → value ≥ 0.
type Func func(x, y float64) float64

// EvalBatch evaluates f over equal-length coordinate slices.
// Errors: ErrNilFunc, ErrLengthMismatch.
func EvalBatch(f Func, xs, ys []float64) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = f(xs[i], ys[i])
	}

	return out, nil
}

// Uniform returns the constant density level.
// Errors: ErrBadParameter unless level is finite and > 0.
func Uniform(level float64) (Func, error) {
	if !(level > 0) || math.IsInf(level, 0) {
		return nil, fmt.Errorf("%w: uniform level %g", ErrBadParameter, level)
	}

	return func(_, _ float64) float64 { return level }, nil
}

// Hotspot is an isotropic Gaussian bump centred at (X, Y).
type Hotspot struct {
	X, Y   float64 // centre
	Sigma  float64 // spread, > 0
	Weight float64 // peak height, ≥ 0
}

// Hotspots returns background + Σ_k w_k·exp(-|p-c_k|²/(2σ_k²)).
// Errors: ErrBadParameter on a negative background, non-positive sigma or negative weight.
func Hotspots(background float64, spots ...Hotspot) (Func, error) {
	if background < 0 || math.IsNaN(background) || math.IsInf(background, 0) {
		return nil, fmt.Errorf("%w: background %g", ErrBadParameter, background)
	}
	cp := make([]Hotspot, len(spots))
	for i, s := range spots {
		if !(s.Sigma > 0) || s.Weight < 0 || math.IsNaN(s.Weight) {
			return nil, fmt.Errorf("%w: hotspot %d (sigma=%g weight=%g)", ErrBadParameter, i, s.Sigma, s.Weight)
		}
		cp[i] = s
	}

	return func(x, y float64) float64 {
		v := background
		for _, s := range cp {
			dx, dy := x-s.X, y-s.Y
			v += s.Weight * math.Exp(-(dx*dx+dy*dy)/(2*s.Sigma*s.Sigma))
		}
		return v
	}, nil
}

// Noise returns an OpenSimplex density in [0,1]; scale is the spatial
// frequency (e.g. 0.03 gives features a few tens of units wide).
// The same seed always yields the same field.
// Errors: ErrBadParameter unless scale is finite and > 0.
func Noise(seed int64, scale float64) (Func, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: noise scale %g", ErrBadParameter, scale)
	}
	gen := opensimplex.New(seed)

	return func(x, y float64) float64 {
		// Eval2 is in [-1,1]; clamp guards the rare overshoot of the gradient sum.
		v := (gen.Eval2(x*scale, y*scale) + 1) / 2
		return math.Min(1, math.Max(0, v))
	}, nil
}

// ScanMax estimates an upper bound for f over dom.
//
// Implementation:
//   - Stage 1: evaluate f on a steps×steps grid spanning dom (edges included).
//   - Stage 2: reject negative/NaN values (ErrNegativeDensity) and an all-zero grid (ErrZeroDensity).
//   - Stage 3: return max·(1+margin).
//
// Complexity: O(steps²) evaluations.
func ScanMax(f Func, dom geom.Domain, steps int, margin float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if err := dom.Validate(); err != nil {
		return 0, err
	}
	if steps < 2 || margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return 0, fmt.Errorf("%w: steps=%d margin=%g", ErrBadGrid, steps, margin)
	}

	dx := dom.Width() / float64(steps-1)
	dy := dom.Height() / float64(steps-1)
	best := 0.0
	var (
		i, j int
		x, y float64
		v    float64
	)
	for i = 0; i < steps; i++ {
		x = dom.MinX + float64(i)*dx
		for j = 0; j < steps; j++ {
			y = dom.MinY + float64(j)*dy
			v = f(x, y)
			if !(v >= 0) {
				return 0, fmt.Errorf("%w: f(%g,%g)=%g", ErrNegativeDensity, x, y, v)
			}
			if v > best {
				best = v
			}
		}
	}
	if best == 0 {
		return 0, ErrZeroDensity
	}
	if math.IsInf(best, 0) {
		return 0, fmt.Errorf("%w: unbounded value on grid", ErrBadParameter)
	}

	return best * (1 + margin), nil
}
