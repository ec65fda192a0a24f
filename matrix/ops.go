// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels.
// Eager kernels allocate exactly one Dense result; the *Into kernels write
// into caller-owned storage and allocate nothing on the happy path. All
// kernels use central validators and fail fast on dimension mismatches.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opCopy      = "CopyInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub sharing validation,
// allocation and the fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b), allocate the result.
//   - Stage 2: fast path if both are *Dense, a single flat loop 0..n-1;
//     otherwise fall back to At/Set with fixed i→j order.
//
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64 // element temporaries
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv // direct write, res owns its storage
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense result.
// Inputs are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense
// result. Inputs are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale computes C = alpha*A into a fresh Dense result.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path over flat storage.
	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = alpha * dm.data[idx]
		}

		return res, nil
	}

	// Generic fallback with fixed i→j order.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense result.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var v float64
	for i := 0; i < rows; i++ { // fixed i→j order; writes stride the result
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x into a fresh vector.
// Errors: ErrNilMatrix (nil operand or vector), ErrDimensionMismatch when
// len(x) != Cols. Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path over flat storage.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			var sum float64
			row := dm.data[i*cols : (i+1)*cols]
			for j, v := range row {
				sum += v * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Generic fallback.
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// addSubInto computes elementwise dst = a + sign*b without allocating.
// Shared core of AddInto/SubInto.
//
// Implementation:
//   - Stage 1: validate a, b and dst are non-nil and share one shape.
//   - Stage 2: all-*Dense fast path over flat slices; otherwise the generic
//     At/At/Set walk in fixed i→j order.
//
// Behavior highlights:
//   - Allocation-free on the happy path: this is the kernel that lets block
//     views and lazy expressions combine inside preallocated buffers.
//   - dst may alias a or b when all three are the same *Dense; the purely
//     element-wise formula makes that safe.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation stage).
//
// Determinism:
//   - Flat 0..n-1 on the fast path; fixed i→j on the generic path.
//
// Complexity: Time O(r*c), Space O(1).
func addSubInto(dst Mutable, a, b Matrix, sign float64, opTag string) error {
	if dst == nil {
		return matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()

	// Fast path: everything is *Dense → single flat loop.
	if dd, okD := dst.(*Dense); okD {
		if da, okA := a.(*Dense); okA {
			if db, okB := b.(*Dense); okB {
				for idx := range dd.data {
					dd.data[idx] = da.data[idx] + sign*db.data[idx]
				}

				return nil
			}
		}
	}

	// Generic path: views and lazy expressions land here.
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return matrixErrorf(opTag, err)
			}
			if err = dst.Set(i, j, av+sign*bv); err != nil {
				return matrixErrorf(opTag, err)
			}
		}
	}

	return nil
}

// AddInto computes dst = a + b element-wise into caller-owned storage,
// allocating nothing on the happy path.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), Space O(1).
//
// AI-Hints:
//   - Preallocate dst once and reuse it across iterations; a, b and dst may
//     be any mix of Dense, views and lazy expressions of one shape.
func AddInto(dst Mutable, a, b Matrix) error { return addSubInto(dst, a, b, +1, opAdd) }

// SubInto computes dst = a - b element-wise into caller-owned storage,
// allocating nothing on the happy path.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), Space O(1).
func SubInto(dst Mutable, a, b Matrix) error { return addSubInto(dst, a, b, -1, opSub) }

// ScaleInto computes dst = alpha*m element-wise into caller-owned storage,
// allocating nothing on the happy path.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), Space O(1).
func ScaleInto(dst Mutable, m Matrix, alpha float64) error {
	if dst == nil {
		return matrixErrorf(opScale, ErrNilMatrix)
	}
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	if err := ValidateSameShape(dst, m); err != nil {
		return matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()

	// Fast path over flat storage.
	if dd, okD := dst.(*Dense); okD {
		if dm, okM := m.(*Dense); okM {
			for idx := range dd.data {
				dd.data[idx] = alpha * dm.data[idx]
			}

			return nil
		}
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opScale, err)
			}
			if err = dst.Set(i, j, alpha*v); err != nil {
				return matrixErrorf(opScale, err)
			}
		}
	}

	return nil
}

// CopyInto copies src into dst element-wise; shapes must match exactly.
// Allocation-free on the happy path.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), Space O(1).
func CopyInto(dst Mutable, src Matrix) error {
	if dst == nil {
		return matrixErrorf(opCopy, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}

	// Fast path over flat storage.
	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			copy(dd.data, ds.data)

			return nil
		}
	}

	rows, cols := src.Rows(), src.Cols()
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(opCopy, err)
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opCopy, err)
			}
		}
	}

	return nil
}
