// SPDX-License-Identifier: MIT

// Package segment implements an algebra over selections of non-negative
// integers represented as ordered lists of contiguous half-open ranges.
//
// Purpose:
//   - Describe arbitrary, possibly disjoint index subsets (active rows,
//     constrained columns, scattered coordinates) as compact range lists.
//   - Provide set-style operations on those lists: overlap test, difference,
//     deferred insertion, canonicalization, cardinality.
//   - Provide logical-order operations (Split, Extract) that address the
//     flattened concatenation of a list's ranges instead of raw indices.
//
// Two list states are meaningful:
//   - raw:       any order, possibly overlapping/adjacent/empty segments,
//     as produced by batched Add calls;
//   - canonical: sorted by Start, no empty segments, no two segments
//     overlapping or touching. Shrink establishes canonical form.
//
// Canonical form is the precondition of Difference, Split and Extract and of
// every view-construction entry point in the view package. Callers batch
// insertions with Add/AddList and pay the canonicalization cost once via
// Shrink; merging is never performed implicitly on insertion.
//
// Determinism & Policy:
//   - All operations are pure (or explicitly documented as mutating), use
//     fixed iteration orders and allocate only their results.
//   - Contract violations (logical ranges past Cardinal) surface as sentinel
//     errors checked via errors.Is; nothing in this package panics on
//     user-supplied input.
//
// AI-Hints:
//   - Keep lists canonical at rest; call Shrink once after a batch of Add.
//   - Use FromMask/FromIndices/FromBitmap to ingest activity descriptions
//     from collaborators; all three produce canonical lists.
package segment
