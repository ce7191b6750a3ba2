// SPDX-License-Identifier: MIT

// Package lup: functional configuration for the numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package lup

import "math"

// DefaultEpsilon is the non-negative tolerance used by symmetry checks
// (Cholesky). It does NOT soften pivot detection: the elimination loop
// treats only an exactly-zero pivot as undefined, by design, so that
// singularity detection stays exact and testable.
const DefaultEpsilon = 1e-9

// panicEpsilonInvalid is the message used when WithEpsilon receives a
// non-finite or negative tolerance (programmer error, hence panic).
const panicEpsilonInvalid = "lup: WithEpsilon: eps must be finite, non-negative"

// options carries the numeric policy. Zero value is never used directly;
// defaultOptions() is the single source of truth.
type options struct {
	epsilon float64 // symmetry tolerance for Cholesky
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{epsilon: DefaultEpsilon}
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// WithEpsilon overrides the symmetry tolerance used by Cholesky.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	// Validate eagerly: a broken tolerance is a programmer error, not a
	// run-time outcome, so it must fail loudly at configuration time.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.epsilon = eps }
}

// gatherOptions folds user options over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
