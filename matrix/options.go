// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text ingestion and formatting.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf rejects "NaN", "Inf" and friends during text ingestion.
	// strconv accepts those spellings, a point cloud never legitimately holds them.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the tolerance used by symmetry checks on covariance
	// matrices before eigendecomposition.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLineSeparatorEmpty = "matrix: WithLineSeparator: separator must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool   // DefaultValidateNaNInf
	lineSeparator  string // DefaultLineSeparator (platform dependent)
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf tokens through ParseRows.
// Use only for diagnostics on dirty input; alignment of such data is meaningless.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLineSeparator overrides the row terminator used when formatting.
// Panics on an empty separator.
//
// AI-Hints:
//   - Use "\n" in tests to get platform-independent golden strings.
func WithLineSeparator(sep string) Option {
	if sep == "" {
		panic(panicLineSeparatorEmpty)
	}

	return func(o *Options) { o.lineSeparator = sep }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		lineSeparator:  DefaultLineSeparator,
	}
}

// gatherOptions applies opts over the defaults in order (last write wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
