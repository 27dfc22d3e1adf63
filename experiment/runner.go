// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rcrit/connectivity"
	"github.com/katalvlaran/rcrit/density"
	"github.com/katalvlaran/rcrit/geom"
	"github.com/katalvlaran/rcrit/radius"
	"github.com/katalvlaran/rcrit/sampler"
)

// SpectralSizeLimit is the largest network size the spectral method handles
// at interactive speed. Larger sizes are still run, with a warning.
const SpectralSizeLimit = 200

// Trial is the outcome of one sampled deployment.
type Trial struct {
	Index       int     // position across the whole run
	Size        int     // number of nodes
	Seed        int64   // seed of the deployment RNG
	Radius      float64 // Rc estimate
	Low, High   float64 // initial bracket
	Evaluations int     // connectivity tests
	Degenerate  bool
	Acceptance  float64 // sampler acceptance rate
	Elapsed     time.Duration
}

// Runner executes a validated Config. It is safe to call Run more than once.
type Runner struct {
	cfg    Config
	logger *slog.Logger
	dom    geom.Domain
	f      density.Func
	zMax   float64
	oracle *connectivity.Oracle
}

// NewRunner validates cfg, builds the density and the oracle, and binds logger
// (nil ⇒ slog.Default()).
func NewRunner(cfg Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	method, err := connectivity.ParseMethod(cfg.Method)
	if err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	oracle, err := connectivity.NewOracle(
		connectivity.WithEpsilon(cfg.Epsilon),
		connectivity.WithMethod(method),
	)
	if err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	dom := geom.DefaultDomain()
	f, zMax, err := cfg.Density.Build(dom)
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, logger: logger, dom: dom, f: f, zMax: zMax, oracle: oracle}, nil
}

// ZMax returns the envelope height used for rejection sampling.
func (r *Runner) ZMax() float64 { return r.zMax }

// Run executes len(Sizes)·Trials trials on at most Workers goroutines.
// The first failing trial cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	log := r.logger.With("run_id", runID)
	started := time.Now()

	total := len(r.cfg.Sizes) * r.cfg.Trials
	trials := make([]Trial, total)
	log.Info("run started",
		"sizes", r.cfg.Sizes, "trials", r.cfg.Trials, "workers", r.cfg.Workers,
		"density", r.cfg.Density.Kind, "z_max", r.zMax, "method", r.cfg.Method)
	if r.oracle.Options().Method == connectivity.MethodSpectral {
		if n := maxSize(r.cfg.Sizes); n > SpectralSizeLimit {
			log.Warn("spectral method is O(n³) per test; consider method: components",
				"n", n, "limit", SpectralSizeLimit)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for k := 0; k < total; k++ {
		if gctx.Err() != nil {
			break
		}
		k := k // per-iteration copy; go directive is 1.21 (no Go 1.22 loopvar semantics)
		size := r.cfg.Sizes[k/r.cfg.Trials]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := r.trial(k, size)
			if err != nil {
				return fmt.Errorf("trial %d (n=%d): %w", k, size, err)
			}
			trials[k] = t
			log.Debug("trial done", "index", k, "n", size, "seed", t.Seed,
				"rc", t.Radius, "evals", t.Evaluations, "elapsed", t.Elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("run failed", "err", err)
		return nil, err
	}
	// A cancellation that raced the loop may leave slots unfilled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{RunID: runID, Config: r.cfg, Trials: trials, Started: started, Elapsed: time.Since(started)}
	for i, n := range r.cfg.Sizes {
		chunk := trials[i*r.cfg.Trials : (i+1)*r.cfg.Trials]
		s := Summarize(n, chunk)
		rep.Summaries = append(rep.Summaries, s)
		log.Info("size done", "n", n, "mean", s.Mean, "stddev", s.StdDev, "median", s.Median, "p95", s.P95)
	}
	log.Info("run finished", "elapsed", rep.Elapsed)

	return rep, nil
}

func maxSize(sizes []int) int {
	m := 0
	for _, n := range sizes {
		m = max(m, n)
	}

	return m
}

// trial samples one deployment of size n and estimates its critical radius.
func (r *Runner) trial(k, n int) (Trial, error) {
	start := time.Now()
	seed := sampler.DeriveSeed(r.cfg.Seed, uint64(k))

	ns, srep, err := sampler.Sample(n, r.f, r.dom, r.zMax, sampler.NewRand(seed),
		sampler.WithBatchFactor(r.cfg.BatchFactor),
		sampler.WithMaxRounds(r.cfg.MaxRounds),
	)
	if err != nil {
		return Trial{}, err
	}
	res, err := radius.FindCriticalRadius(ns,
		radius.WithTolerance(r.cfg.Tolerance),
		radius.WithTester(r.oracle),
	)
	if err != nil {
		return Trial{}, err
	}

	return Trial{
		Index:       k,
		Size:        n,
		Seed:        seed,
		Radius:      res.Radius,
		Low:         res.Initial.Low,
		High:        res.Initial.High,
		Evaluations: res.Evaluations,
		Degenerate:  res.Degenerate,
		Acceptance:  srep.AcceptanceRate(),
		Elapsed:     time.Since(start),
	}, nil
}
