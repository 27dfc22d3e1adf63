package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	a, b := NewRand(0), NewRand(DefaultSeed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDeriveSeed_StreamsDiffer(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 1000; s++ {
		v := DeriveSeed(42, s)
		require.False(t, seen[v], "collision at stream %d", s)
		seen[v] = true
	}
	assert.Equal(t, DeriveSeed(42, 7), DeriveSeed(42, 7))
	assert.NotEqual(t, DeriveSeed(42, 7), DeriveSeed(43, 7))
}

func TestChooseK_DistinctSubset(t *testing.T) {
	a := make([]int, 20)
	for i := range a {
		a[i] = i
	}
	got := chooseK(a, 7, NewRand(1))
	require.Len(t, got, 7)

	seen := make(map[int]bool)
	for _, v := range got {
		require.False(t, seen[v])
		seen[v] = true
	}
	assert.Len(t, chooseK(a, 50, NewRand(1)), 20)
}

// TestChooseK_Unbiased checks that every element is picked about k/n of the time.
func TestChooseK_Unbiased(t *testing.T) {
	const n, k, reps = 10, 3, 20000
	counts := make([]int, n)
	r := NewRand(77)
	a := make([]int, n)
	for rep := 0; rep < reps; rep++ {
		for i := range a {
			a[i] = i
		}
		for _, v := range chooseK(a, k, r) {
			counts[v]++
		}
	}
	want := float64(reps*k) / n
	for i, c := range counts {
		assert.InDelta(t, want, float64(c), 0.06*want, "element %d", i)
	}
}
