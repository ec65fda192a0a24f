// SPDX-License-Identifier: MIT

// Package matrix_test: eager kernels, in-place kernels and their allocation
// contract, lazy expressions and comparison kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockview/matrix"
	"github.com/stretchr/testify/require"
)

// requireAllEqual asserts element-wise equality of two sources within the
// default tolerance.
func requireAllEqual(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestAddSub verifies the eager element-wise kernels and their validation.
func TestAddSub(t *testing.T) {
	a := newFilled(t, 2, 3)
	b := newFilled(t, 2, 3)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	twice, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	requireAllEqual(t, sum, twice) // a + a == 2a

	diff, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	requireAllEqual(t, diff, a) // (a+b) - b == a

	// Shape mismatch fails fast.
	c := newFilled(t, 3, 2)
	_, err = matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Nil operand fails fast.
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose verifies the eager transpose and the double-transpose
// identity.
func TestTranspose(t *testing.T) {
	m := newFilled(t, 2, 3)
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())

	v, err := mt.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v) // m(1,2) == 3*1+2

	back, err := matrix.Transpose(mt)
	require.NoError(t, err)
	requireAllEqual(t, back, m)
}

// TestMatVec verifies matrix-vector multiplication on both paths.
func TestMatVec(t *testing.T) {
	m := newFilled(t, 2, 3) // rows: [0 1 2], [3 4 5]
	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 12}, y)

	// The generic path (non-*Dense source) must agree with the fast path.
	lt, err := matrix.LazyTranspose(m) // 3×2 source without flat storage
	require.NoError(t, err)
	y, err = matrix.MatVec(lt, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 5, 7}, y)

	// Wrong vector length fails fast.
	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Nil vector fails fast.
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestIntoKernels verifies the in-place kernels against their eager
// counterparts on both the flat and the generic path.
func TestIntoKernels(t *testing.T) {
	a := newFilled(t, 3, 4)
	b := newFilled(t, 3, 4)
	dst, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.NoError(t, matrix.AddInto(dst, a, b))
	want, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	requireAllEqual(t, dst, want)

	require.NoError(t, matrix.SubInto(dst, dst, b)) // aliased dst is safe element-wise
	requireAllEqual(t, dst, a)

	require.NoError(t, matrix.ScaleInto(dst, a, 3))
	want, err = matrix.Scale(a, 3)
	require.NoError(t, err)
	requireAllEqual(t, dst, want)

	require.NoError(t, matrix.CopyInto(dst, a))
	requireAllEqual(t, dst, a)

	// Shape mismatches fail fast before any write.
	small, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.AddInto(small, a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.CopyInto(small, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AddInto(nil, a, b), matrix.ErrNilMatrix)
}

// TestIntoKernelsAllocationFree pins the allocation contract: in-place
// kernels over preallocated storage allocate nothing, including when the
// operands are lazy expressions.
func TestIntoKernelsAllocationFree(t *testing.T) {
	a := newFilled(t, 8, 8)
	b := newFilled(t, 8, 8)
	dst, err := matrix.NewDense(8, 8)
	require.NoError(t, err)
	sum, err := matrix.LazySum(a, b)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		if err := matrix.AddInto(dst, a, b); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs) // flat fast path

	allocs = testing.AllocsPerRun(100, func() {
		if err := matrix.CopyInto(dst, sum); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs) // generic path over a lazy expression
}

// TestLazyExpressions verifies the deferred element-wise sources against
// their eager counterparts.
func TestLazyExpressions(t *testing.T) {
	m := newFilled(t, 3, 3)

	sum, err := matrix.LazySum(m, m)
	require.NoError(t, err)
	want, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	requireAllEqual(t, sum, want)

	scaled, err := matrix.LazyScale(m, -1)
	require.NoError(t, err)
	want, err = matrix.Scale(m, -1)
	require.NoError(t, err)
	requireAllEqual(t, scaled, want)

	lt, err := matrix.LazyTranspose(m)
	require.NoError(t, err)
	want, err = matrix.Transpose(m)
	require.NoError(t, err)
	requireAllEqual(t, lt, want)

	// Construction validates shapes and presence up front.
	other := newFilled(t, 2, 3)
	_, err = matrix.LazySum(m, other)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.LazyScale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestComparisons covers AllClose, Equal and IsZero policies.
func TestComparisons(t *testing.T) {
	a := newFilled(t, 2, 2)
	b := a.Clone()

	ok, err := matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, b.Set(1, 1, 100))
	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	// Relative tolerance absorbs proportional deviations.
	ok, err = matrix.AllClose(a, b, 1.0, 0)
	require.NoError(t, err)
	require.True(t, ok) // |3-100| <= 1.0*|100|

	// Invalid tolerances are rejected.
	_, err = matrix.AllClose(a, b, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	z, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	zero, err := matrix.IsZero(z, 0)
	require.NoError(t, err)
	require.True(t, zero)

	require.NoError(t, z.Set(0, 2, 1e-3))
	zero, err = matrix.IsZero(z, 1e-6)
	require.NoError(t, err)
	require.False(t, zero)
}
