// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for row ingestion and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// Matrices built with this option reject NaN and ±Inf in ingestion, Set and Apply.
// This is the default; use WithNoValidateNaNInf to relax.
//
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
// Non-finite values then flow through the product kernel unchanged, so
// 0*NaN contributes NaN exactly as the sum formula dictates.
//
// AI-Hints:
//   - Disable only for controlled experiments; keep it on for user data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies setters in order over the defaults; nil setters are skipped.
func gatherOptions(optFns ...Option) Options {
	o := defaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
