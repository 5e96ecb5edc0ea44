// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloudalign/matrix"
)

func TestMul_Small(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, c)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	// 2×3 · 2×3: columns 3 ≠ rows 2.
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	c, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Nil(t, c)
}

func TestMul_NilOperand(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1}})
	_, err := matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityAndZeroWidth(t *testing.T) {
	t.Parallel()

	x := RandDense(t, 4, 5, 7)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	got, err := matrix.Product(I, x)
	require.NoError(t, err)
	assert.True(t, got.Equal(x))

	// 4×4 · 4×0 is a legal empty product.
	empty, err := matrix.NewDense(4, 0)
	require.NoError(t, err)
	z, err := matrix.Mul(I, empty)
	require.NoError(t, err)
	MustDims(t, z, 4, 0)
}

func TestMul_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 3, 3, 1)
	b := RandDense(t, 3, 2, 2)
	ac, bc := a.Clone(), b.Clone()

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, a.Equal(ac))
	assert.True(t, b.Equal(bc))
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.T(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 4}, {10, 3}, {0, 3}, {3, 0}}
	for k, s := range shapes {
		m := RandDense(t, s[0], s[1], int64(k))
		once, err := matrix.Transpose(m)
		require.NoError(t, err)
		MustDims(t, once, s[1], s[0])
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		assert.True(t, twice.Equal(m), "shape %v", s)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, -2}, {0.5, 4}})
	s, err := matrix.Scale(m, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, 4}, {-1, -8}}, s)
}

func TestAppendRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	h, err := matrix.AppendRow(m, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {1, 1, 1}}, h)

	// Appending to an empty 0×2 yields a single filled row.
	e, err := matrix.NewDense(0, 2)
	require.NoError(t, err)
	h, err = matrix.AppendRow(e, -3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, -3}}, h)

	_, err = matrix.AppendRow(nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDropLastRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	d, err := matrix.DropLastRow(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, d)

	one := MustRows(t, [][]float64{{1, 2}})
	d, err = matrix.DropLastRow(one)
	require.NoError(t, err)
	MustDims(t, d, 0, 2)

	_, err = matrix.DropLastRow(d)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestAppendThenDrop_RoundTrip(t *testing.T) {
	t.Parallel()

	m := RandDense(t, 3, 6, 11)
	h, err := matrix.AppendRow(m, 1)
	require.NoError(t, err)
	back, err := matrix.DropLastRow(h)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}
