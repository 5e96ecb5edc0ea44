// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cloudalign/matrix"
	"github.com/katalvlaran/cloudalign/transform"
)

func TestRotate_KnownPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rx, ry, rz float64
		want       []float64
	}{
		{"60 about X", 60, 0, 0, []float64{1, -0.3660254038, 1.366025404}},
		{"90 about Y", 0, 90, 0, []float64{1, 1, -1}},
		{"90 about Z", 0, 0, 90, []float64{-1, 1, 1}},
		{"no rotation", 0, 0, 0, []float64{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := transform.Rotate(matrix.MustFromRows([][]float64{{1, 1, 1}}), tt.rx, tt.ry, tt.rz)
			require.NoError(t, err)
			row, err := out.RowVector(0)
			require.NoError(t, err)
			assert.Truef(t, floats.EqualApprox(row, tt.want, eps), "got %v want %v", row, tt.want)
		})
	}
}

func TestRotate_OrderIsXThenYThenZ(t *testing.T) {
	t.Parallel()

	cloud := matrix.MustFromRows([][]float64{{1, 2, 3}, {-1, 0.5, 4}})
	combined, err := transform.Rotate(cloud, 30, 45, 60)
	require.NoError(t, err)

	step, err := transform.Rotate(cloud, 30, 0, 0)
	require.NoError(t, err)
	step, err = transform.Rotate(step, 0, 45, 0)
	require.NoError(t, err)
	step, err = transform.Rotate(step, 0, 0, 60)
	require.NoError(t, err)

	ok, err := matrix.AllClose(combined, step, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRotate_PreservesShapeAndInput(t *testing.T) {
	t.Parallel()

	cloud := matrix.MustFromRows([][]float64{{0, 0, 0}, {1, 1, 1}, {0.5, 0.5, 0.5}, {3, -2, 7}})
	before := cloud.Clone()
	out, err := transform.Rotate(cloud, 12, -34, 56)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rows())
	assert.Equal(t, 3, out.Cols())
	assert.True(t, cloud.Equal(before))

	// The origin is fixed by a rotation about the origin.
	origin, err := out.RowVector(0)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(origin, []float64{0, 0, 0}, 1e-12))
}

func TestRotate_EmptyCloud(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	out, err := transform.Rotate(empty, 10, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rows())
	assert.Equal(t, 3, out.Cols())
}

func TestRotate_RejectsNonPointClouds(t *testing.T) {
	t.Parallel()

	_, err := transform.Rotate(matrix.MustFromRows([][]float64{{1, 2}}), 10, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = transform.Rotate(nil, 10, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = transform.RotateAboutCentroid(matrix.MustFromRows([][]float64{{1, 2, 3, 4}}), transform.Angles{X: 1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRotationPipeline_SkipsZeroAngles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, transform.RotationPipeline(transform.Angles{}).Len())
	assert.Equal(t, 5, transform.RotationPipeline(transform.Angles{Y: 1}).Len())
	assert.Equal(t, 7, transform.RotationPipeline(transform.Angles{X: 1, Y: 2, Z: 3}).Len())
	assert.True(t, transform.Angles{}.IsZero())
	assert.False(t, transform.Angles{Z: -1}.IsZero())
}

func TestRotateAboutCentroid_KeepsCentroid(t *testing.T) {
	t.Parallel()

	cloud := matrix.MustFromRows([][]float64{{10, 10, 10}, {11, 10, 10}, {10, 12, 10}, {10, 10, 13}})
	before := cloud.Clone()
	out, err := transform.RotateAboutCentroid(cloud, transform.Angles{X: 33, Y: -71, Z: 140})
	require.NoError(t, err)
	assert.True(t, cloud.Equal(before), "input must not change")
	assert.NotSame(t, cloud, out)

	want, err := matrix.ColumnMeans(cloud)
	require.NoError(t, err)
	got, err := matrix.ColumnMeans(out)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(got, want, 1e-9), "got %v want %v", got, want)

	// Distances to the centroid are preserved by a rigid rotation.
	for i := 0; i < cloud.Rows(); i++ {
		a, _ := cloud.RowVector(i)
		b, _ := out.RowVector(i)
		floats.Sub(a, want)
		floats.Sub(b, want)
		assert.InDelta(t, floats.Norm(a, 2), floats.Norm(b, 2), 1e-9)
	}
}

func TestRotateAboutCentroid_DiffersFromOriginRotation(t *testing.T) {
	t.Parallel()

	cloud := matrix.MustFromRows([][]float64{{5, 0, 0}, {6, 0, 0}})
	aboutOrigin, err := transform.Rotate(cloud, 0, 0, 90)
	require.NoError(t, err)
	inPlace, err := transform.RotateAboutCentroid(cloud, transform.Angles{Z: 90})
	require.NoError(t, err)

	o, _ := aboutOrigin.RowVector(0)
	p, _ := inPlace.RowVector(0)
	assert.True(t, floats.EqualApprox(o, []float64{0, 5, 0}, eps))
	assert.True(t, floats.EqualApprox(p, []float64{5.5, -0.5, 0}, eps))
}
