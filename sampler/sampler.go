// SPDX-License-Identifier: MIT

// Package sampler places network nodes by acceptance–rejection sampling
// from an arbitrary bounded 2-D density.
//
// Algorithm (per round):
//
//	draw BatchFactor·n candidates (x, y, z) uniformly from domain × [0, zMax);
//	keep (x, y) whenever z ≤ f(x, y);
//	stop once at least n points were kept, then pick exactly n of them
//	uniformly at random without replacement.
//
// With a valid bound zMax the expected number of rounds is O(1). A bad bound
// is reported instead of looped on: a density value above zMax, or MaxRounds
// rounds without enough acceptances, both yield ErrExhaustedSampling.
//
// The random source is always passed in explicitly; Sample never touches the
// global math/rand state.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/rcrit/density"
	"github.com/katalvlaran/rcrit/geom"
)

// Sentinel errors returned by the sampler.
var (
	// ErrBadCount indicates a non-positive node count.
	ErrBadCount = errors.New("sampler: node count must be positive")

	// ErrNilDensity indicates a nil density function.
	ErrNilDensity = errors.New("sampler: density function is nil")

	// ErrExhaustedSampling indicates an invalid zMax bound or an acceptance rate
	// that collapsed before n points were collected.
	ErrExhaustedSampling = errors.New("sampler: sampling exhausted")

	// ErrInvalidDensity indicates a density value that is negative or NaN.
	ErrInvalidDensity = errors.New("sampler: density returned a negative or NaN value")

	// ErrBadOption indicates a non-positive BatchFactor or MaxRounds, or a
	// per-round batch larger than MaxBatch.
	ErrBadOption = errors.New("sampler: invalid option")
)

const (
	// DefaultBatchFactor is the per-round candidate count as a multiple of n.
	DefaultBatchFactor = 100

	// DefaultMaxRounds caps the number of rounds before giving up.
	DefaultMaxRounds = 64

	// MaxBatch caps the candidates drawn per round (three float64 buffers each).
	MaxBatch = 1 << 26
)

// Options configures Sample.
type Options struct {
	BatchFactor int // candidates per round = BatchFactor·n; must be ≥ 1
	MaxRounds   int // rounds before ErrExhaustedSampling; must be ≥ 1
}

// Option is a functional option for Sample/Generate.
type Option func(*Options)

// WithBatchFactor sets the per-round oversampling multiple.
func WithBatchFactor(k int) Option { return func(o *Options) { o.BatchFactor = k } }

// WithMaxRounds sets the round cap.
func WithMaxRounds(r int) Option { return func(o *Options) { o.MaxRounds = r } }

// DefaultOptions returns the defaults used when no Option is given.
func DefaultOptions() Options {
	return Options{BatchFactor: DefaultBatchFactor, MaxRounds: DefaultMaxRounds}
}

// Report describes how a node set was obtained.
type Report struct {
	Rounds   int // batches drawn
	Drawn    int // candidate points drawn
	Accepted int // candidates under the density surface
}

// AcceptanceRate returns Accepted/Drawn (0 when nothing was drawn).
func (r Report) AcceptanceRate() float64 {
	if r.Drawn == 0 {
		return 0
	}

	return float64(r.Accepted) / float64(r.Drawn)
}

// Generate returns n nodes drawn from density f over dom, given an upper bound zMax.
// It is Sample without the Report.
func Generate(n int, f density.Func, dom geom.Domain, zMax float64, r *rand.Rand, opts ...Option) (geom.NodeSet, error) {
	ns, _, err := Sample(n, f, dom, zMax, r, opts...)

	return ns, err
}

// Sample runs acceptance–rejection sampling and reports round statistics.
//
// Errors:
//   - ErrBadCount (n ≤ 0), ErrNilDensity, geom.ErrInvalidDomain.
//   - ErrBadOption: BatchFactor or MaxRounds < 1, or BatchFactor·n > MaxBatch.
//   - ErrExhaustedSampling: zMax not finite and positive, a value f(x,y) > zMax,
//     or MaxRounds rounds without n acceptances.
//   - ErrInvalidDensity: f returned a negative or NaN value.
//
// A nil r uses the DefaultSeed stream.
// Complexity: O(rounds · BatchFactor · n) density evaluations, O(BatchFactor · n) memory.
func Sample(n int, f density.Func, dom geom.Domain, zMax float64, r *rand.Rand, opts ...Option) (geom.NodeSet, Report, error) {
	var rep Report
	if n <= 0 {
		return geom.NodeSet{}, rep, ErrBadCount
	}
	if f == nil {
		return geom.NodeSet{}, rep, ErrNilDensity
	}
	if err := dom.Validate(); err != nil {
		return geom.NodeSet{}, rep, err
	}
	if !(zMax > 0) || math.IsInf(zMax, 0) {
		return geom.NodeSet{}, rep, fmt.Errorf("%w: zMax=%g is not a valid bound", ErrExhaustedSampling, zMax)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.BatchFactor < 1 || o.MaxRounds < 1 {
		return geom.NodeSet{}, rep, fmt.Errorf("%w: batch=%d rounds=%d", ErrBadOption, o.BatchFactor, o.MaxRounds)
	}
	if o.BatchFactor > MaxBatch/n {
		return geom.NodeSet{}, rep, fmt.Errorf("%w: batch %d·%d exceeds %d candidates", ErrBadOption, o.BatchFactor, n, MaxBatch)
	}
	if r == nil {
		r = NewRand(0)
	}

	batch := o.BatchFactor * n
	xs := make([]float64, batch)
	ys := make([]float64, batch)
	zs := make([]float64, batch)
	pool := make([]geom.Point, 0, n)

	var (
		k    int
		v    float64
		vals []float64
		err  error
	)
	for rep.Rounds < o.MaxRounds {
		rep.Rounds++
		for k = 0; k < batch; k++ {
			xs[k] = dom.MinX + r.Float64()*dom.Width()
			ys[k] = dom.MinY + r.Float64()*dom.Height()
			zs[k] = r.Float64() * zMax
		}
		if vals, err = density.EvalBatch(f, xs, ys); err != nil {
			return geom.NodeSet{}, rep, err
		}
		rep.Drawn += batch

		for k = 0; k < batch; k++ {
			v = vals[k]
			if !(v >= 0) {
				return geom.NodeSet{}, rep, fmt.Errorf("%w: f(%g,%g)=%g", ErrInvalidDensity, xs[k], ys[k], v)
			}
			if v > zMax {
				return geom.NodeSet{}, rep, fmt.Errorf("%w: f(%g,%g)=%g exceeds zMax=%g",
					ErrExhaustedSampling, xs[k], ys[k], v, zMax)
			}
			if zs[k] <= v {
				pool = append(pool, geom.Point{X: xs[k], Y: ys[k]})
			}
		}
		rep.Accepted = len(pool)

		if len(pool) >= n {
			ns, err := geom.NewNodeSet(chooseK(pool, n, r))
			return ns, rep, err
		}
	}

	return geom.NodeSet{}, rep, fmt.Errorf("%w: %d of %d points accepted after %d rounds",
		ErrExhaustedSampling, len(pool), n, rep.Rounds)
}
