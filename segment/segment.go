// SPDX-License-Identifier: MIT

// Package segment: the Segment value type and its local algebra.
// A Segment is a half-open range of non-negative integers; the list-level
// operations live in list.go and build on the primitives defined here.

package segment

import "fmt"

// Segment represents the half-open index range [Start, Start+Count).
// Count == 0 denotes an empty segment: it carries no indices and is dropped
// during canonicalization. Both fields are expected to be non-negative.
type Segment struct {
	Start int // first index covered by the segment
	Count int // number of consecutive indices; 0 means empty
}

// NewSegment returns the segment [start, start+count).
// Complexity: O(1).
func NewSegment(start, count int) Segment {
	return Segment{Start: start, Count: count}
}

// End returns the first index NOT covered by the segment (Start+Count).
// Complexity: O(1).
func (s Segment) End() int {
	return s.Start + s.Count // half-open upper bound
}

// Empty reports whether the segment covers no indices (Count <= 0).
// Complexity: O(1).
func (s Segment) Empty() bool {
	return s.Count <= 0
}

// Contains reports whether index i falls inside [Start, End).
// Empty segments contain nothing. Complexity: O(1).
func (s Segment) Contains(i int) bool {
	return !s.Empty() && i >= s.Start && i < s.End()
}

// Overlaps reports whether the half-open ranges of s and t intersect.
//
// Behavior highlights:
//   - Symmetric: s.Overlaps(t) == t.Overlaps(s).
//   - An empty segment never overlaps anything, itself included.
//   - Touching segments ([0,2) and [2,4)) do NOT overlap.
//
// Complexity: O(1).
func (s Segment) Overlaps(t Segment) bool {
	// Empty operands are disjoint from everything by definition.
	if s.Empty() || t.Empty() {
		return false
	}

	// Standard half-open interval intersection test.
	return s.Start < t.End() && t.Start < s.End()
}

// Difference returns the portion(s) of s not covered by t as a canonical
// list of 0, 1 or 2 segments.
//
// Implementation:
//   - Stage 1: discard trivial cases (s empty → nothing; disjoint → s).
//   - Stage 2: keep the part of s left of t and the part right of t,
//     dropping whichever side collapses to an empty segment.
//
// Behavior highlights:
//   - s \ s and s \ (covering t) yield the empty list.
//   - t strictly interior to s splits s into exactly two pieces.
//
// Returns:
//   - List: ordered, non-overlapping, non-empty remainder of s.
//
// Complexity: Time O(1), Space O(1) amortized (at most two segments).
func (s Segment) Difference(t Segment) List {
	// An empty minuend leaves nothing to keep.
	if s.Empty() {
		return nil
	}
	// Disjoint subtrahend removes nothing.
	if !s.Overlaps(t) {
		return List{s}
	}

	var res List
	// Left remainder: [s.Start, t.Start).
	if t.Start > s.Start {
		res = append(res, Segment{Start: s.Start, Count: t.Start - s.Start})
	}
	// Right remainder: [t.End, s.End).
	if t.End() < s.End() {
		res = append(res, Segment{Start: t.End(), Count: s.End() - t.End()})
	}

	return res
}

// String renders the segment as "start:count" (e.g. "4:3" for [4,7)).
// Complexity: O(1).
func (s Segment) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.Count)
}
