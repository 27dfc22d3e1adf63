package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rcrit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain_Validate(t *testing.T) {
	require.NoError(t, geom.DefaultDomain().Validate())

	cases := []geom.Domain{
		{MinX: 0, MaxX: 0, MinY: 0, MaxY: 1},
		{MinX: 1, MaxX: 0, MinY: 0, MaxY: 1},
		{MinX: 0, MaxX: 1, MinY: 0, MaxY: math.Inf(1)},
		{MinX: math.NaN(), MaxX: 1, MinY: 0, MaxY: 1},
	}
	for _, d := range cases {
		assert.ErrorIs(t, d.Validate(), geom.ErrInvalidDomain, "%+v", d)
	}
}

func TestDomain_Geometry(t *testing.T) {
	d := geom.DefaultDomain()
	assert.Equal(t, 10000.0, d.Area())
	assert.True(t, d.Contains(geom.Point{X: 0, Y: 100}))
	assert.False(t, d.Contains(geom.Point{X: -0.1, Y: 50}))
}

func TestNewNodeSet(t *testing.T) {
	_, err := geom.NewNodeSet(nil)
	require.ErrorIs(t, err, geom.ErrEmptyNodeSet)

	_, err = geom.NewNodeSet([]geom.Point{{X: math.NaN(), Y: 0}})
	require.ErrorIs(t, err, geom.ErrNonFinitePoint)

	src := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	ns, err := geom.NewNodeSet(src)
	require.NoError(t, err)
	src[0].X = 99 // caller mutation must not leak in
	assert.Equal(t, geom.Point{X: 1, Y: 2}, ns.At(0))

	pts := ns.Points()
	pts[1].Y = 99 // nor must mutation of the returned copy
	assert.Equal(t, geom.Point{X: 3, Y: 4}, ns.At(1))
	assert.Equal(t, 2, ns.Len())
}

// TestDistanceMatrix_ThreeOnALine uses nodes (0,0), (0,3), (0,10).
func TestDistanceMatrix_ThreeOnALine(t *testing.T) {
	ns, err := geom.NewNodeSet([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: 10}})
	require.NoError(t, err)

	dm, err := geom.DistanceMatrix(ns)
	require.NoError(t, err)

	want := [][]float64{{0, 3, 10}, {3, 0, 7}, {10, 7, 0}}
	for i := range want {
		row, err := dm.Row(i)
		require.NoError(t, err)
		assert.Equal(t, want[i], row)
	}
}

func TestDistanceMatrix_Invariants(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 1}, {X: 4, Y: 5}, {X: 50, Y: 20}, {X: 99, Y: 0}, {X: 4, Y: 5}}
	ns, err := geom.NewNodeSet(pts)
	require.NoError(t, err)
	dm, err := geom.DistanceMatrix(ns)
	require.NoError(t, err)

	n := ns.Len()
	at := func(i, j int) float64 { v, _ := dm.At(i, j); return v }
	for i := 0; i < n; i++ {
		assert.Zero(t, at(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, at(i, j), at(j, i))
			assert.GreaterOrEqual(t, at(i, j), 0.0)
			for k := 0; k < n; k++ {
				assert.LessOrEqual(t, at(i, j), at(i, k)+at(k, j)+1e-12)
			}
		}
	}
	assert.Zero(t, at(1, 4)) // co-located nodes
	assert.Equal(t, 5.0, at(0, 1))
}

func TestDistanceMatrix_Empty(t *testing.T) {
	_, err := geom.DistanceMatrix(geom.NodeSet{})
	require.ErrorIs(t, err, geom.ErrEmptyNodeSet)
}
