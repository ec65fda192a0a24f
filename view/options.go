// SPDX-License-Identifier: MIT

// Package view: functional configuration for view binding.
// This file defines:
//   - Option (functional setter over internal options),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) enforcing invariants in one place.
//
// Design goals:
//   - Deterministic behavior: no global state, last-writer-wins semantics.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package view

import (
	"math"

	"github.com/katalvlaran/blockview/matrix"
)

// DefaultEpsilon is the non-negative tolerance used by view comparisons
// (IsZero, EqualTo) when no WithEpsilon option is supplied. It mirrors the
// matrix package's default so view-level and kernel-level equality agree.
const DefaultEpsilon = matrix.DefaultEpsilon

// panicEpsilonInvalid is the stable message for nonsensical WithEpsilon input.
const panicEpsilonInvalid = "view: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal binding options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; binding entry points accept ...Option and
// resolve them via gatherOptions.
type options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance used by the bound view's IsZero and
// EqualTo comparisons.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g. 1e-9) for double-precision data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon.
	return func(o *options) { o.eps = eps }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults; last-writer-wins. Complexity: O(k) for k setters.
func gatherOptions(user ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
