// SPDX-License-Identifier: MIT

// Package sampler - RNG utilities shared by node placement and the experiment driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical node sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Give each parallel trial its own NewRand(DeriveSeed(parent, trial)).
package sampler

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0 or a nil *rand.Rand.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64 finalizer: small input changes give well-spread outputs, so
// consecutive stream ids do not produce correlated generators.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// chooseK moves a uniformly random k-subset of a to a[:k] (partial Fisher–Yates)
// and returns that prefix. k is clamped to len(a).
// Complexity: O(k).
func chooseK[T any](a []T, k int, r *rand.Rand) []T {
	n := len(a)
	if k > n {
		k = n
	}
	var i, j int
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		a[i], a[j] = a[j], a[i]
	}

	return a[:k]
}
