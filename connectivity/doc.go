// SPDX-License-Identifier: MIT

// Package connectivity decides whether a set of nodes with pairwise
// distances forms a single connected network at a broadcasting radius R.
//
// What & Why:
//
//	At radius R every node i is linked to each node j with d(i,j) ≤ R
//	(itself included). The uniform random walk on that proximity graph has
//	the row-stochastic transition matrix
//
//	    P[i,j] = 1/k_i  if d(i,j) ≤ R,  else 0,   k_i = |{j : d(i,j) ≤ R}|.
//
//	P always has eigenvalue 1 with multiplicity equal to the number of
//	connected components. Hence the graph is connected iff the
//	second-largest eigenvalue magnitude λ₂ is below 1. Self-loops make the
//	walk aperiodic, so -1 is never an eigenvalue and cannot mimic a
//	second component.
//
// Numerics:
//
//	P is not symmetric, but S = D^{-1/2}·A·D^{-1/2} (A the 0/1 adjacency with
//	self-loops, D = diag(k)) is similar to P and exactly symmetric, so the
//	spectrum is computed with the Jacobi solver from package matrix.
//	Because eigenvalues carry rounding error, a radius is reported as
//	connected only when λ₂ < 1 − ε (ε defaults to DefaultEpsilon and is
//	tunable with WithEpsilon).
//
// Methods:
//
//	MethodSpectral   – λ₂ test described above (default).
//	MethodComponents – breadth-first component count; O(n²), exact, used for
//	                   large n and to cross-check the spectral test.
//
// The Oracle holds configuration only; repeated calls with the same input
// return identical answers.
package connectivity
