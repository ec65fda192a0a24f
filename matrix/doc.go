// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage and the strict,
// fail-fast kernels that the view layer binds to.
//
// Purpose:
//   - Define the read (Matrix) and read-write (Mutable) interfaces any
//     viewable source implements: concrete storage, block views and lazy
//     expressions alike.
//   - Provide Dense, a row-major flat-slice implementation.
//   - Provide eager kernels (Add, Sub, Scale, Transpose, MatVec) that
//     allocate exactly one result, in-place kernels (AddInto, SubInto,
//     ScaleInto, CopyInto) that allocate nothing, and lazy element-wise
//     expressions (LazySum, LazyScale, LazyTranspose) for composing sources
//     without materializing intermediates.
//
// Determinism & Policy:
//   - Fixed loop orders everywhere (flat 0..n-1 on the *Dense fast path,
//     i→j on the generic interface path).
//   - All failure modes are sentinel errors checked via errors.Is; public
//     indexers return ErrOutOfRange rather than panicking.
//   - Zero-sized matrices (0 rows and/or 0 columns) are legal values: an
//     empty selection materializes into one. Only negative dimensions are
//     rejected.
//
// AI-Hints:
//   - Pass *Dense operands to unlock the flat-slice fast paths.
//   - Use the *Into kernels inside hot loops: they write into caller-owned
//     storage and perform no dynamic allocation on the happy path.
package matrix
