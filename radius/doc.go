// SPDX-License-Identifier: MIT

// Package radius estimates the critical broadcasting radius Rc of a node
// set: the smallest radius at which the proximity graph is connected.
//
// Bracket:
//
//	low  = max_i min_{j≠i} d(i,j)   (largest nearest-neighbour distance)
//	high = min_i max_j     d(i,j)   (smallest farthest-neighbour distance)
//
//	Below low some node has no neighbour, so the network cannot be
//	connected. At high one node reaches every other node, so it is. Hence
//	low ≤ Rc ≤ high, and low == high pins Rc exactly.
//
// Search:
//
//	Bisection on [low, high] with ⌈log2((high−low)/tol)⌉ oracle calls, fixed
//	up front, so the final bracket is at most tol wide. Each midpoint M is
//	tested: connected ⇒ high = M, otherwise low = M.
//
// Assumption (not proven here): connectivity is monotone in R. Distances
// are symmetric and growing R only adds edges, so a connected network stays
// connected at any larger radius. The search is only correct under this
// assumption.
//
// The returned estimate is the last midpoint tested. It lies within tol of
// Rc but is not guaranteed to be itself a connecting radius.
package radius
