package density_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rcrit/density"
	"github.com/katalvlaran/rcrit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	f, err := density.Uniform(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f(3, 97))

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = density.Uniform(bad)
		assert.ErrorIs(t, err, density.ErrBadParameter)
	}
}

func TestEvalBatch(t *testing.T) {
	f, err := density.Hotspots(0.5, density.Hotspot{X: 0, Y: 0, Sigma: 1, Weight: 2})
	require.NoError(t, err)

	vals, err := density.EvalBatch(f, []float64{0, 100}, []float64{0, 100})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, vals[0], 1e-12) // peak + background
	assert.InDelta(t, 0.5, vals[1], 1e-12) // far tail

	_, err = density.EvalBatch(f, []float64{0}, nil)
	require.ErrorIs(t, err, density.ErrLengthMismatch)
	_, err = density.EvalBatch(nil, nil, nil)
	require.ErrorIs(t, err, density.ErrNilFunc)
}

func TestHotspots_BadParameters(t *testing.T) {
	_, err := density.Hotspots(-1)
	assert.ErrorIs(t, err, density.ErrBadParameter)
	_, err = density.Hotspots(0, density.Hotspot{Sigma: 0, Weight: 1})
	assert.ErrorIs(t, err, density.ErrBadParameter)
	_, err = density.Hotspots(0, density.Hotspot{Sigma: 1, Weight: -1})
	assert.ErrorIs(t, err, density.ErrBadParameter)
}

func TestNoise_RangeAndDeterminism(t *testing.T) {
	a, err := density.Noise(7, 0.05)
	require.NoError(t, err)
	b, err := density.Noise(7, 0.05)
	require.NoError(t, err)

	for x := 0.0; x <= 100; x += 12.5 {
		for y := 0.0; y <= 100; y += 12.5 {
			v := a(x, y)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			assert.Equal(t, v, b(x, y))
		}
	}

	_, err = density.Noise(7, 0)
	assert.ErrorIs(t, err, density.ErrBadParameter)
}

func TestScanMax(t *testing.T) {
	dom := geom.DefaultDomain()

	u, _ := density.Uniform(2)
	zMax, err := density.ScanMax(u, dom, density.DefaultScanSteps, density.DefaultMargin)
	require.NoError(t, err)
	assert.InDelta(t, 2.1, zMax, 1e-12)

	// The peak sits on a grid node (50,50) for 201 steps over [0,100].
	h, _ := density.Hotspots(0, density.Hotspot{X: 50, Y: 50, Sigma: 10, Weight: 3})
	zMax, err = density.ScanMax(h, dom, density.DefaultScanSteps, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, zMax, 1e-12)
}

func TestScanMax_Errors(t *testing.T) {
	dom := geom.DefaultDomain()

	_, err := density.ScanMax(nil, dom, 10, 0)
	assert.ErrorIs(t, err, density.ErrNilFunc)

	zero := density.Func(func(_, _ float64) float64 { return 0 })
	_, err = density.ScanMax(zero, dom, 10, 0)
	assert.ErrorIs(t, err, density.ErrZeroDensity)

	neg := density.Func(func(x, _ float64) float64 { return x - 50 })
	_, err = density.ScanMax(neg, dom, 10, 0)
	assert.ErrorIs(t, err, density.ErrNegativeDensity)

	u, _ := density.Uniform(1)
	_, err = density.ScanMax(u, dom, 1, 0)
	assert.ErrorIs(t, err, density.ErrBadGrid)
	_, err = density.ScanMax(u, dom, 10, -0.1)
	assert.ErrorIs(t, err, density.ErrBadGrid)
	_, err = density.ScanMax(u, geom.Domain{}, 10, 0)
	assert.ErrorIs(t, err, geom.ErrInvalidDomain)
}
