// SPDX-License-Identifier: MIT

// Package segment: list-level algebra.
// A List is an ordered sequence of Segments. Operations that require
// canonical form say so explicitly; Shrink establishes it from any raw list.

package segment

import (
	"sort"
	"strings"
)

// List is an ordered sequence of Segments, raw or canonical.
//
// In canonical form the list is sorted by Start ascending, contains no empty
// segments, and no two consecutive segments overlap or touch:
// s[i].End() < s[i+1].Start for every i. Concatenating the ranges of a
// canonical list in order defines the list's logical index space
// [0, Cardinal()): logical position p maps to the p-th covered raw index.
type List []Segment

// Add appends s to the list without canonicalizing.
// Merging is deferred to an explicit Shrink call so that callers can batch
// insertions and pay the canonicalization cost once.
// Complexity: O(1) amortized.
func (l *List) Add(s Segment) {
	*l = append(*l, s) // raw append; duplicates/overlaps allowed until Shrink
}

// AddList appends all elements of src, same deferred-merge contract as Add.
// Complexity: O(len(src)) amortized.
func (l *List) AddList(src List) {
	*l = append(*l, src...)
}

// Sort orders the list in place by Start ascending (ties by Count ascending).
// Sorting alone does not merge or drop anything; see Shrink.
// Complexity: O(n log n).
func (l List) Sort() {
	sort.Slice(l, func(i, j int) bool {
		if l[i].Start != l[j].Start {
			return l[i].Start < l[j].Start
		}

		return l[i].Count < l[j].Count // deterministic tie-break
	})
}

// Shrink canonicalizes the list in place: sort, drop empty segments, merge
// any segments that overlap or touch after sorting.
//
// Implementation:
//   - Stage 1: Sort by (Start, Count).
//   - Stage 2: single forward sweep, extending the current run while the
//     next segment starts at or before the run's End, emitting runs in place.
//
// Behavior highlights:
//   - Idempotent: shrinking a canonical list is a no-op.
//   - After Shrink, Cardinal equals the number of distinct covered indices.
//
// Complexity: Time O(n log n), Space O(1) beyond the list itself.
//
// AI-Hints:
//   - Call once after a batch of Add/AddList; every canonical-form consumer
//     (Difference, Split, Extract, view binding) relies on this invariant.
func (l *List) Shrink() {
	if len(*l) == 0 {
		return // nothing to canonicalize
	}
	l.Sort()

	src := *l
	out := src[:0] // in-place compaction; out never outruns the read cursor
	run := Segment{Count: 0}
	for _, s := range src {
		if s.Empty() {
			continue // empty segments carry no indices
		}
		if run.Empty() {
			run = s // first non-empty segment opens the run
			continue
		}
		if s.Start <= run.End() {
			// Overlapping or touching: extend the current run.
			if s.End() > run.End() {
				run.Count = s.End() - run.Start
			}
			continue
		}
		// Gap found: emit the finished run and open a new one.
		out = append(out, run)
		run = s
	}
	if !run.Empty() {
		out = append(out, run) // emit the trailing run
	}
	*l = out
}

// Cardinal returns the sum of Counts of all segments currently in the list.
// Only on a canonical list does this equal the number of distinct covered
// indices; raw lists may overcount overlaps. Complexity: O(n).
func (l List) Cardinal() int {
	var total int
	for _, s := range l {
		total += s.Count
	}

	return total
}

// MaxEnd returns the largest End() over the list, 0 for an empty list.
// On a canonical list this is simply the End of the last segment.
// Complexity: O(n).
func (l List) MaxEnd() int {
	var maxEnd int
	for _, s := range l {
		if !s.Empty() && s.End() > maxEnd {
			maxEnd = s.End()
		}
	}

	return maxEnd
}

// Difference subtracts b from every element of the list, producing a new list
// covering l \ b.
//
// Behavior highlights:
//   - Segments untouched by b pass through unchanged; segments overlapping b
//     are trimmed or removed; segments straddling b split into two pieces.
//   - A canonical input yields a canonical output (pieces never touch).
//
// Complexity: Time O(n), Space O(n).
func (l List) Difference(b Segment) List {
	res := make(List, 0, len(l)+1) // at most one extra piece from a split
	for _, s := range l {
		res = append(res, s.Difference(b)...)
	}

	return res
}

// Split removes the first pos logical indices from the list (mutating the
// receiver to keep only the remainder) and returns the removed head as a new
// canonical list.
//
// Implementation:
//   - Stage 1: clamp pos to [0, Cardinal]; pos <= 0 removes nothing.
//   - Stage 2: walk segments in order, moving whole segments into the result
//     while their Count fits, then cutting the boundary segment in place.
//
// Behavior highlights:
//   - Requires canonical input; the remainder and the result are canonical.
//   - A cut exactly on a segment boundary never creates a zero-length piece.
//   - pos >= Cardinal moves everything: the receiver becomes empty.
//
// Inputs:
//   - pos: number of logical indices to remove from the front.
//
// Returns:
//   - List: canonical list covering logical positions [0, pos) in the
//     original underlying coordinates.
//
// Determinism:
//   - Single forward walk; the receiver is mutated exactly once.
//
// Complexity: Time O(n), Space O(k) for the k returned segments.
//
// AI-Hints:
//   - Use Extract when the receiver must stay intact; Split is the
//     consuming variant for working through a selection front to back.
func (l *List) Split(pos int) List {
	if pos <= 0 {
		return nil // nothing removed, receiver untouched
	}

	var (
		head      List // removed logical prefix
		remaining = pos
		i         int // index of the first segment kept in the receiver
	)
	for i < len(*l) && remaining > 0 {
		s := (*l)[i]
		if s.Count <= remaining {
			// Whole segment moves into the removed head.
			head = append(head, s)
			remaining -= s.Count
			i++
			continue
		}
		// Boundary cut inside s: head takes the front, receiver keeps the rest.
		head = append(head, Segment{Start: s.Start, Count: remaining})
		(*l)[i] = Segment{Start: s.Start + remaining, Count: s.Count - remaining}
		remaining = 0
	}
	*l = (*l)[i:] // drop fully consumed segments

	return head
}

// Extract returns the canonical list covering logical indices
// [start, start+size) of the receiver, expressed in the receiver's underlying
// (non-logical) coordinates. The receiver is not modified.
//
// Implementation:
//   - Stage 1: validate start/size non-negative and within Cardinal.
//   - Stage 2: skip start logical indices, then collect size indices,
//     trimming the two boundary segments as needed.
//
// Behavior highlights:
//   - Requires canonical input; the result is canonical.
//   - Extract(0, Cardinal()) reproduces the list (identity).
//   - Windows ending exactly on a segment boundary emit no empty piece.
//
// Errors:
//   - ErrNegativeSize when start < 0 or size < 0.
//   - ErrOutOfLogicalRange when start+size > Cardinal(): requesting indices
//     past the logical range is a contract violation, failed fast here.
//
// Complexity: Time O(n), Space O(k) for the k returned segments.
func (l List) Extract(start, size int) (List, error) {
	if start < 0 || size < 0 {
		return nil, ErrNegativeSize
	}
	if start+size > l.Cardinal() {
		return nil, ErrOutOfLogicalRange
	}
	if size == 0 {
		return nil, nil // legal empty window
	}

	var (
		res    List
		toSkip = start
		toTake = size
	)
	for _, s := range l {
		if toTake == 0 {
			break // window complete
		}
		if toSkip >= s.Count {
			toSkip -= s.Count // whole segment lies before the window
			continue
		}
		// The window starts inside (or at the head of) this segment.
		first := s.Start + toSkip
		avail := s.Count - toSkip
		toSkip = 0
		if avail > toTake {
			avail = toTake // window ends inside this segment
		}
		res = append(res, Segment{Start: first, Count: avail})
		toTake -= avail
	}

	return res, nil
}

// Indices returns the flattened raw indices covered by the list, in logical
// order. Intended for interop and debugging, not hot paths.
// Complexity: Time O(Cardinal), Space O(Cardinal).
func (l List) Indices() []int {
	res := make([]int, 0, l.Cardinal())
	for _, s := range l {
		for i := s.Start; i < s.End(); i++ {
			res = append(res, i)
		}
	}

	return res
}

// Clone returns an independent copy of the list.
// Complexity: Time O(n), Space O(n).
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	res := make(List, len(l))
	copy(res, l)

	return res
}

// Equal reports whether both lists hold the same segments in the same order.
// A nil list and an empty list are considered equal. Complexity: O(n).
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}

	return true
}

// String renders the list as "[ 4:3, 9:2, 15:5 ]"; the empty list renders
// as "[ ]". Complexity: O(n).
func (l List) String() string {
	if len(l) == 0 {
		return "[ ]"
	}
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}

	return "[ " + strings.Join(parts, ", ") + " ]"
}
