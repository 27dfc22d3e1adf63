// SPDX-License-Identifier: MIT

// Package rcrit estimates the critical broadcasting radius of random
// two-dimensional ad hoc networks: the smallest common transmission radius
// at which every node can reach every other node, possibly over many hops.
//
// 🚀 What is rcrit?
//
//	A small, deterministic engine that brings together:
//		• Geometry: points, the 100×100 deployment square, distance matrices
//		• Densities: uniform, Gaussian hotspots, OpenSimplex noise
//		• Sampling: acceptance–rejection placement of n nodes
//		• Connectivity: spectral test on the random-walk transition matrix
//		• Search: bracket from the distances, bisection to a tolerance
//		• Experiments: seeded Monte-Carlo runs over several network sizes
//
// Packages:
//
//	matrix/       dense matrices, validators, Jacobi eigenvalues, row normalisation
//	geom/         Point, Domain, NodeSet, DistanceMatrix
//	density/      density functions and the zMax grid scan
//	sampler/      rejection sampler and seeded RNG streams
//	connectivity/ transition matrix, λ₂, Oracle (spectral or BFS components)
//	radius/       FindBracket and FindCriticalRadius
//	experiment/   YAML config, parallel runner, summaries, CSV reports
//	cmd/rcrit/    command-line front end
//
// Quick example (three nodes on a line):
//
//	(0,0)───3───(0,3)───────7───────(0,10)
//
//	The bracket is [7, 7], so Rc = 7 without a single connectivity test.
//
//	go run ./cmd/rcrit -config configs/hotspots.yaml
package rcrit
