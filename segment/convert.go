// SPDX-License-Identifier: MIT

// Package segment: ingestion of external activity descriptions.
// Collaborators describe active indices as dense boolean masks, explicit
// index lists or roaring bitmaps; every constructor here converts those into
// the same canonical List form.

package segment

import "github.com/RoaringBitmap/roaring/v2"

// Full returns the canonical list covering [0, n); n <= 0 yields the empty
// list. Complexity: O(1).
func Full(n int) List {
	if n <= 0 {
		return nil
	}

	return List{{Start: 0, Count: n}}
}

// FromMask run-length encodes a dense boolean activity mask into the
// canonical list of index ranges where the mask is true.
//
// Implementation:
//   - Stage 1: single forward scan tracking the open run of true entries.
//   - Stage 2: emit the run on every true→false transition and at the end.
//
// Behavior highlights:
//   - Output is canonical by construction (runs are separated by false
//     entries, hence never adjacent).
//   - A nil or all-false mask yields the empty list.
//
// Complexity: Time O(len(mask)), Space O(runs).
//
// AI-Hints:
//   - This is the natural entry point when the caller computes one boolean
//     per configuration/velocity coordinate.
func FromMask(mask []bool) List {
	var (
		res      List
		runStart = -1 // start of the currently open run, -1 when closed
	)
	for i, active := range mask {
		if active {
			if runStart < 0 {
				runStart = i // open a new run
			}
			continue
		}
		if runStart >= 0 {
			// Run ended at i (exclusive).
			res = append(res, Segment{Start: runStart, Count: i - runStart})
			runStart = -1
		}
	}
	if runStart >= 0 {
		// Trailing run reaching the end of the mask.
		res = append(res, Segment{Start: runStart, Count: len(mask) - runStart})
	}

	return res
}

// FromIndices converts an explicit set of indices (any order, duplicates
// allowed; negative entries are ignored) into the canonical list covering
// exactly those indices.
// Complexity: Time O(n log n) via Shrink, Space O(n).
func FromIndices(indices []int) List {
	res := make(List, 0, len(indices))
	for _, i := range indices {
		if i < 0 {
			continue // non-negative domain only
		}
		res = append(res, Segment{Start: i, Count: 1})
	}
	res.Shrink() // sort + merge consecutive indices into runs

	return res
}

// FromBitmap converts a roaring bitmap of active indices into the canonical
// list covering the same set. A nil or empty bitmap yields the empty list.
//
// Behavior highlights:
//   - Iteration order of roaring bitmaps is ascending, so runs are assembled
//     in a single pass without a final sort.
//
// Complexity: Time O(cardinality), Space O(runs).
func FromBitmap(bm *roaring.Bitmap) List {
	if bm == nil {
		return nil
	}

	var (
		res List
		run Segment // currently open run; Count==0 means closed
	)
	it := bm.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if run.Count > 0 && i == run.End() {
			run.Count++ // extend the consecutive run
			continue
		}
		if run.Count > 0 {
			res = append(res, run) // gap: emit finished run
		}
		run = Segment{Start: i, Count: 1}
	}
	if run.Count > 0 {
		res = append(res, run)
	}

	return res
}

// Bitmap materializes the list into a roaring bitmap holding every covered
// index. Raw lists are handled correctly (overlaps collapse inside the
// bitmap). Complexity: Time O(n) range insertions.
func (l List) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, s := range l {
		if s.Empty() {
			continue
		}
		bm.AddRange(uint64(s.Start), uint64(s.End())) // half-open, matches Segment
	}

	return bm
}
