// SPDX-License-Identifier: MIT

// Package density defines the node-placement density capability and a few
// ready-made densities for experiments.
//
// A density is any Func mapping (x, y) in the deployment domain to a
// non-negative real. It need not integrate to one: acceptance–rejection
// sampling only uses its shape and an upper bound zMax.
//
// Built-ins:
//
//   - Uniform(level)               – flat density (homogeneous deployment).
//   - Hotspots(background, spots…) – Gaussian bumps over a flat floor (clustered deployment).
//   - Noise(seed, scale)           – OpenSimplex noise in [0,1] (terrain-like deployment).
//
// ScanMax estimates zMax by evaluating the density on a fine grid and
// inflating the observed maximum by a safety margin, since a grid search
// underestimates a continuous maximum.
package density
