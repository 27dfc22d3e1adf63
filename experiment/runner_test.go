package experiment_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/rcrit/experiment"
	"github.com/katalvlaran/rcrit/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func smallConfig() experiment.Config {
	cfg := experiment.DefaultConfig()
	cfg.Sizes = []int{8, 12}
	cfg.Trials = 6
	cfg.Workers = 3
	cfg.Tolerance = 0.5
	cfg.Seed = 2024

	return cfg
}

func TestRunner_Run(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	require.Len(t, rep.Trials, 12)
	for k, tr := range rep.Trials {
		assert.Equal(t, k, tr.Index)
		assert.Equal(t, sampler.DeriveSeed(2024, uint64(k)), tr.Seed)
		assert.LessOrEqual(t, tr.Low, tr.Radius+0.5)
		assert.GreaterOrEqual(t, tr.High+0.5, tr.Radius)
		assert.InDelta(t, 1.0/1.05, tr.Acceptance, 0.05)
	}
	assert.Equal(t, 8, rep.Trials[5].Size)
	assert.Equal(t, 12, rep.Trials[6].Size)

	require.Len(t, rep.Summaries, 2)
	assert.Equal(t, 8, rep.Summaries[0].Size)
	assert.Equal(t, 6, rep.Summaries[0].Count)
	assert.Equal(t, 12, rep.Summaries[1].Size)
	assert.LessOrEqual(t, rep.Summaries[1].Min, rep.Summaries[1].Median)
	assert.LessOrEqual(t, rep.Summaries[1].Median, rep.Summaries[1].Max)
}

func TestRunner_IndependentOfWorkers(t *testing.T) {
	radii := func(workers int) []float64 {
		cfg := smallConfig()
		cfg.Workers = workers
		r, err := experiment.NewRunner(cfg, quietLogger())
		require.NoError(t, err)
		rep, err := r.Run(context.Background())
		require.NoError(t, err)
		out := make([]float64, len(rep.Trials))
		for i, tr := range rep.Trials {
			out[i] = tr.Radius
		}
		return out
	}

	assert.Equal(t, radii(1), radii(5))
}

func TestRunner_SeedChangesResults(t *testing.T) {
	run := func(seed int64) float64 {
		cfg := smallConfig()
		cfg.Seed = seed
		r, err := experiment.NewRunner(cfg, quietLogger())
		require.NoError(t, err)
		rep, err := r.Run(context.Background())
		require.NoError(t, err)
		return rep.Summaries[1].Mean
	}

	assert.NotEqual(t, run(1), run(2))
}

func TestRunner_ComponentsMethodAgrees(t *testing.T) {
	spectral, err := experiment.NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)
	cfg := smallConfig()
	cfg.Method = "components"
	bfs, err := experiment.NewRunner(cfg, quietLogger())
	require.NoError(t, err)

	a, err := spectral.Run(context.Background())
	require.NoError(t, err)
	b, err := bfs.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Summaries[0].Mean, b.Summaries[0].Mean)
	assert.Equal(t, a.Summaries[1].Mean, b.Summaries[1].Mean)
}

func TestRunner_Cancelled(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig(), quietLogger())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_SamplingFailurePropagates(t *testing.T) {
	cfg := smallConfig()
	cfg.Density.ZMax = 0.5 // below the uniform level of 1
	r, err := experiment.NewRunner(cfg, quietLogger())
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	assert.ErrorIs(t, err, sampler.ErrExhaustedSampling)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Trials = 0
	_, err := experiment.NewRunner(cfg, nil)
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)
}

func TestRunner_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := smallConfig()
	cfg.Sizes = []int{6}
	cfg.Trials = 2
	r, err := experiment.NewRunner(cfg, logger)
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"run started"`)
	assert.Contains(t, out, `"msg":"trial done"`)
	assert.Contains(t, out, `"msg":"size done"`)
	assert.Contains(t, out, `"run_id":"`+rep.RunID+`"`)
}

func TestRunner_WarnsOnLargeSpectralSizes(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for _, tc := range []struct {
		method string
		warn   bool
	}{
		{"spectral", true},
		{"components", false},
	} {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		cfg := smallConfig()
		cfg.Sizes = []int{10, experiment.SpectralSizeLimit + 1}
		cfg.Method = tc.method
		r, err := experiment.NewRunner(cfg, logger)
		require.NoError(t, err)

		_, err = r.Run(cancelled)
		require.ErrorIs(t, err, context.Canceled)
		if tc.warn {
			assert.Contains(t, buf.String(), `"level":"WARN"`, tc.method)
		} else {
			assert.NotContains(t, buf.String(), `"level":"WARN"`, tc.method)
		}
	}
}
