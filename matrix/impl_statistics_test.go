// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloudalign/matrix"
)

func TestColumnMeans(t *testing.T) {
	t.Parallel()

	X := MustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})
	means, err := matrix.ColumnMeans(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5.5, 11, 16.5}, means, epsTight)

	empty, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	means, err = matrix.ColumnMeans(empty)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, means)

	_, err = matrix.ColumnMeans(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterColumns(t *testing.T) {
	t.Parallel()

	X := RandDense(t, 25, 3, 3)
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	MustDims(t, Xc, 25, 3)

	centered, err := matrix.ColumnMeans(Xc)
	require.NoError(t, err)
	for j, v := range centered {
		assert.InDelta(t, 0, v, 1e-12, "column %d not centered", j)
	}

	// Un-centering with the returned means restores the input.
	back, err := matrix.AddRowVector(Xc, means)
	require.NoError(t, err)
	CompareClose(t, back, X, 1e-12)
}

func TestCovariance_Known(t *testing.T) {
	t.Parallel()

	// x = [1,2,3,4], y = 2x, z constant.
	X := MustRows(t, [][]float64{{1, 2, 5}, {2, 4, 5}, {3, 6, 5}, {4, 8, 5}})
	cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.5, 5, 5}, means, epsTight)

	varX := 5.0 / 3.0 // sample variance of 1..4
	want := [][]float64{
		{varX, 2 * varX, 0},
		{2 * varX, 4 * varX, 0},
		{0, 0, 0},
	}
	CompareClose(t, cov, MustRows(t, want), 1e-12)
	require.NoError(t, matrix.ValidateSymmetric(cov, matrix.DefaultEpsilon))
}

func TestCovariance_NeedsTwoRows(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Covariance(MustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.Covariance(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
