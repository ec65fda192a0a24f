// Package blockview is your in-memory toolkit for describing and touching
// arbitrary sub-blocks of dense matrices (active rows, constrained columns,
// scattered degrees of freedom) without ever copying the underlying storage.
//
// 🚀 What is blockview?
//
//	A compact, deterministic library that brings together:
//		• Segment algebra: half-open index ranges with overlap, difference,
//		  deferred canonicalization, logical split & extract
//		• Dense matrices: row-major float64 storage with strict, fail-fast kernels
//		• Block views: bind a row/column selection to a caller-owned matrix
//		  and read or write exactly the selected entries, allocation-free
//		• Vector views: the same selection machinery over plain []float64 buffers
//
// ✨ Why choose blockview?
//
//   - Zero-copy – views are non-owning handles; the matrix always stays yours
//   - Rock-solid guarantees – sentinel errors, central validators, fixed loop orders
//   - Batch-friendly – accumulate raw segments, canonicalize once, bind many times
//   - Interoperable – activity masks, explicit index lists and roaring bitmaps
//     all convert into the same canonical segment form
//
// Under the hood, everything is organized under three subpackages:
//
//	segment/ : segments, segment lists and their set-style algebra
//	matrix/  : Dense storage, eager & lazy kernels, comparisons
//	view/    : row/column selections, read views, write views, vector views
//
// Quick ASCII example:
//
//	rows {2,3,6,7,8,9} of a 10×11 matrix
//
//	    ┌───────────┐
//	    │···········│ 0
//	    │███████████│ 2─3
//	    │···········│
//	    │███████████│ 6─9
//	    └───────────┘
//
//	is just the canonical segment list [ 2:2, 6:4 ] bound as a row view.
//
// Dive into the per-package documentation for full examples and the exact
// canonical-form and allocation contracts.
//
//	go get github.com/katalvlaran/blockview
package blockview
