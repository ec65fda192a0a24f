// SPDX-License-Identifier: MIT

// Package view exposes arbitrary row/column selections of dense matrices as
// zero-copy read and write views.
//
// Purpose:
//   - Describe a subset of rows and/or columns of a matrix as canonical
//     segment lists (a Blocks value, the selection).
//   - Bind a selection to a caller-owned matrix and read the selected
//     entries as if they formed a contiguous matrix (ReadView), or write
//     through to exactly those entries (WriteView), without copying the
//     underlying storage.
//   - Do the same over plain []float64 buffers (VecView) for error-vector
//     style consumers.
//
// Selections are built incrementally in the segment package's deferred-merge
// style: AddRow/AddCol append raw ranges, and canonicalization (sort, drop
// empties, merge) happens implicitly, exactly once, before any binding or
// cardinality query, so the view's own coordinate space is deterministic.
//
// Ownership & lifetime:
//   - The bound matrix is owned by the caller; selections and views hold
//     only non-owning references plus the segment lists, valid strictly for
//     the lifetime of the caller-owned matrix.
//   - Views are transient: bind, use inside an expression or assignment,
//     discard. They provide no internal locking; concurrent use with at
//     least one WriteView over the same matrix must be serialized by the
//     caller.
//
// Allocation contract:
//   - A bound view participates in the matrix package's kernels through the
//     Matrix/Mutable interfaces. Evaluating arithmetic over views with the
//     *Into kernels performs no dynamic allocation; only Eval and WriteTo
//     materialize into freshly sized storage.
//
// AI-Hints:
//   - Build one selection per activity pattern and bind it to many matrices;
//     binding is cheap and the selection is reusable.
//   - An empty selection is a legal zero-sized view, not an error.
package view
