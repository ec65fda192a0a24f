// SPDX-License-Identifier: MIT

// Package matrix: numeric comparison kernels.
// Views and selections are considered equal when their evaluated dense
// content is identical within tolerance; these kernels are that definition.

package matrix

import "math"

// DefaultEpsilon is the non-negative tolerance used by the convenience
// comparison entry points (Equal, IsZero).
const DefaultEpsilon = 1e-9

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if all elements satisfy the relation.
//
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances (ErrNaNInf), abs negative ones,
//     validate presence and shape equality.
//   - Stage 2: *Dense fast path over flat slices with early exit; generic
//     At fallback otherwise, fixed i→j order.
//
// Complexity: Time O(r*c), Space O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Normalize tolerances to non-negative finite values.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	// Validate presence and shape equality using central validators.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	rows, cols := a.Rows(), a.Cols()

	// Dense fast path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				diff := math.Abs(da.data[idx] - db.data[idx])
				if diff > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe, still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have identical shapes and element-wise
// content within DefaultEpsilon absolute tolerance.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	return AllClose(a, b, 0, DefaultEpsilon)
}

// IsZero reports whether every element of m is zero within eps absolute
// tolerance (negative eps is abs-ed; NaN/Inf eps → ErrNaNInf).
// Complexity: O(r*c).
func IsZero(m Matrix, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false, matrixErrorf("IsZero", ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsZero", err)
	}

	// Dense fast path.
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			if math.Abs(v) > eps {
				return false, nil
			}
		}

		return true, nil
	}

	// Generic fallback.
	rows, cols := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf("IsZero", err)
			}
			if math.Abs(v) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
