// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the reduction kernels.
//
// Design goals:
//   - No global state: diagnostics are injected per call, never read from a
//     package-level logger.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Options never change numeric results; they only add observation.
package matrix

import "github.com/katalvlaran/lalg/trace"

// ---------- Internal panic messages (no magic strings) ----------

const panicTracerNil = "matrix: WithTracer: tracer must not be nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tracer trace.Tracer // receives step snapshots; trace.Discard by default
}

// WithTracer routes step-by-step snapshots of a reduction to t.
// Panics when t is nil.
//
// AI-Hints:
//   - trace.New(os.Stderr, trace.WithDevelopmentMode(true)) prints every
//     elimination step; trace.Discard (the default) costs nothing.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic(panicTracerNil)
	}

	return func(o *Options) { o.tracer = t }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{tracer: trace.Discard}
}

// gatherOptions applies user setters over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
