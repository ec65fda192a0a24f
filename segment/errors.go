// SPDX-License-Identifier: MIT
// Package segment: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// segment package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions.

package segment

import "errors"

var (
	// ErrOutOfLogicalRange is returned when a logical window [start, start+size)
	// requested from Extract reaches past Cardinal(list). Split is NOT subject
	// to this error: it clamps to "everything" by contract.
	ErrOutOfLogicalRange = errors.New("segment: logical index range exceeded")

	// ErrNegativeSize is returned when a negative start, size or count is
	// passed where only non-negative values are meaningful.
	ErrNegativeSize = errors.New("segment: negative position or size")
)
