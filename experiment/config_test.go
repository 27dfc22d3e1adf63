package experiment_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rcrit/experiment"
	"github.com/katalvlaran/rcrit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := experiment.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.05, cfg.Tolerance)
	assert.Equal(t, 1e-9, cfg.Epsilon)
	assert.Equal(t, "uniform", cfg.Density.Kind)
}

func TestDecodeConfig_OverridesDefaults(t *testing.T) {
	src := `
sizes: [10, 20]
trials: 7
seed: 42
workers: 2
density:
  kind: hotspots
  level: 0.2
  hotspots:
    - {x: 30, y: 30, sigma: 8, weight: 1}
    - {x: 70, y: 60, sigma: 12, weight: 0.5}
`
	cfg, err := experiment.DecodeConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, 7, cfg.Trials)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Len(t, cfg.Density.Hotspots, 2)
	// untouched keys keep their defaults
	assert.Equal(t, 0.05, cfg.Tolerance)
	assert.Equal(t, "spectral", cfg.Method)
	assert.Equal(t, 201, cfg.Density.ScanSteps)
}

func TestDecodeConfig_Empty(t *testing.T) {
	cfg, err := experiment.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, experiment.DefaultConfig().Sizes, cfg.Sizes)
}

func TestDecodeConfig_UnknownKey(t *testing.T) {
	_, err := experiment.DecodeConfig(strings.NewReader("tolerence: 0.1\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, experiment.ErrInvalidConfig)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		field string
	}{
		{"no sizes", "sizes: []", "sizes"},
		{"zero size", "sizes: [10, 0]", "sizes[1]"},
		{"zero trials", "trials: 0", "trials"},
		{"zero tolerance", "tolerance: 0", "tolerance"},
		{"negative tolerance", "tolerance: -0.5", "tolerance"},
		{"epsilon one", "epsilon: 1", "epsilon"},
		{"zero workers", "workers: 0", "workers"},
		{"bad method", "method: psychic", "method"},
		{"bad kind", "density: {kind: volcano}", "density.kind"},
		{"hotspots without spots", "density: {kind: hotspots}", "density.hotspots"},
		{"uniform level zero", "density: {kind: uniform, level: 0}", "density.level"},
		{"negative level", "density: {kind: hotspots, level: -1, hotspots: [{x: 1, y: 1, sigma: 2, weight: 1}]}", "density.level"},
		{"huge batch factor", "batch_factor: 4611686018427387903", "batch_factor"},
		{"bad sigma", "density: {kind: hotspots, hotspots: [{x: 1, y: 1, sigma: 0, weight: 1}]}", "sigma"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := experiment.DecodeConfig(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, experiment.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidate_HotspotsAllowZeroBackground(t *testing.T) {
	cfg, err := experiment.DecodeConfig(strings.NewReader(
		"density: {kind: hotspots, level: 0, hotspots: [{x: 50, y: 50, sigma: 5, weight: 1}]}"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Density.Level)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [5]\ntrials: 2\n"), 0o600))

	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, cfg.Sizes)
	assert.Equal(t, 2, cfg.Trials)

	_, err = experiment.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDensityConfig_Build(t *testing.T) {
	dom := geom.DefaultDomain()

	d := experiment.DefaultConfig().Density
	d.Level = 2
	f, zMax, err := d.Build(dom)
	require.NoError(t, err)
	assert.Equal(t, 2.0, f(10, 10))
	assert.InDelta(t, 2.1, zMax, 1e-12)

	d.ZMax = 5
	_, zMax, err = d.Build(dom)
	require.NoError(t, err)
	assert.Equal(t, 5.0, zMax)

	noise := experiment.DensityConfig{Kind: experiment.KindNoise, NoiseSeed: 3, ScanSteps: 51, Margin: 0.1}
	f, zMax, err = noise.Build(dom)
	require.NoError(t, err)
	assert.LessOrEqual(t, f(12.5, 80), zMax)
	assert.LessOrEqual(t, zMax, 1.1)

	_, _, err = experiment.DensityConfig{Kind: "volcano"}.Build(dom)
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)
}
