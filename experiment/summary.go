// SPDX-License-Identifier: MIT

package experiment

import (
	"math"
	"sort"
)

// Summary aggregates the Rc estimates of one network size.
type Summary struct {
	Size   int
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation (n−1); 0 for a single trial
	Min    float64
	P05    float64
	Median float64
	P95    float64
	Max    float64
}

// Summarize computes the statistics of trials' radii. All trials are assumed
// to share size n. An empty slice yields a Summary with only Size set.
func Summarize(n int, trials []Trial) Summary {
	s := Summary{Size: n, Count: len(trials)}
	if len(trials) == 0 {
		return s
	}
	xs := make([]float64, len(trials))
	sum := 0.0
	for i, t := range trials {
		xs[i] = t.Radius
		sum += t.Radius
	}
	sort.Float64s(xs)
	s.Mean = sum / float64(len(xs))
	if len(xs) > 1 {
		ss := 0.0
		for _, x := range xs {
			ss += (x - s.Mean) * (x - s.Mean)
		}
		s.StdDev = math.Sqrt(ss / float64(len(xs)-1))
	}
	s.Min, s.Max = xs[0], xs[len(xs)-1]
	s.P05 = Quantile(xs, 0.05)
	s.Median = Quantile(xs, 0.5)
	s.P95 = Quantile(xs, 0.95)

	return s
}

// Quantile returns the q-quantile of sorted xs by linear interpolation
// between closest ranks: h = (n−1)·q. q is clamped to [0,1]; empty xs gives NaN.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	q = math.Min(1, math.Max(0, q))
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
