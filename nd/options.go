// SPDX-License-Identifier: MIT

// Package nd: functional configuration for Array construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes what New writes into the buffer.
//   - Last writer wins: WithFill and WithValues replace each other.
package nd

import "github.com/katalvlaran/ndspan/shape"

// ---------- Defaults (single source of truth) ----------

// MaxRank mirrors shape.MaxRank: the compile-time bound on dimensions.
// Buffers allocated without options hold the zero value of T.
const MaxRank = shape.MaxRank

// ---------- Public option type (functional) ----------

// Option configures the initial contents of an Array built by NewWithOptions.
type Option[T any] func(*options[T])

// options stores the resolved configuration.
type options[T any] struct {
	fill    T    // value written to every element when hasFill
	hasFill bool // WithFill seen last
	values  []T  // copied row-major into the buffer when hasVals
	hasVals bool // WithValues seen last
}

// WithFill initialises every element with v.
// Replaces an earlier WithValues.
func WithFill[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.fill, o.hasFill = v, true
		o.values, o.hasVals = nil, false
	}
}

// WithValues copies src (row-major) into the new buffer.
// len(src) must equal the element count; NewWithOptions returns
// ErrInvalidShape otherwise. The slice is copied, never retained.
// Replaces an earlier WithFill.
func WithValues[T any](src []T) Option[T] {
	return func(o *options[T]) {
		o.values, o.hasVals = src, true
		var zero T
		o.fill, o.hasFill = zero, false
	}
}

// gatherOptions applies setters in order (last writer wins).
func gatherOptions[T any](opts ...Option[T]) options[T] {
	var o options[T]
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
