// SPDX-License-Identifier: MIT

// Package geom holds the planar data model of an ad hoc network trial:
// node coordinates, the deployment domain and the pairwise distance matrix.
//
// A NodeSet is an ordered, immutable sequence of points created once per
// trial. DistanceMatrix turns it into an n×n symmetric matrix with a zero
// diagonal, the only input the connectivity and radius packages need.
//
// Complexity:
//
//	DistanceMatrix: O(n²) time and memory; only the upper triangle is
//	computed, then mirrored, so symmetry is exact.
package geom
