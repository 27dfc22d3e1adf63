// SPDX-License-Identifier: MIT

// Package experiment drives Monte-Carlo estimation of the critical radius.
//
// A run samples Trials independent deployments for every network size in
// Sizes, estimates Rc for each with package radius, and aggregates the
// estimates into per-size summaries.
//
// Config:
//
//	YAML file decoded over DefaultConfig and checked with struct tags
//	(go-playground/validator). Unknown keys are rejected.
//
// Determinism:
//
//	Trial k (counted across all sizes) uses seed DeriveSeed(Seed, k) and
//	writes into slot k of a preallocated slice, so results do not depend
//	on Workers or on goroutine scheduling.
//
// Logging goes to the *slog.Logger passed to NewRunner: one debug record
// per trial and one info record per size.
package experiment
