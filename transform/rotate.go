// SPDX-License-Identifier: MIT
// Package: transform
//
// Purpose:
//   - Assemble the canonical rotation pipeline for N×3 point clouds.
//   - Offer origin-centred (Rotate) and centroid-centred (RotateAboutCentroid) entry points.

package transform

import (
	"fmt"

	"github.com/katalvlaran/cloudalign/matrix"
)

const pointDim = 3

// Angles holds per-axis rotation angles in degrees.
// Rotations apply in X, Y, Z order; a zero angle contributes no stage.
type Angles struct {
	X, Y, Z float64
}

// IsZero reports whether no rotation is requested.
func (a Angles) IsZero() bool { return a.X == 0 && a.Y == 0 && a.Z == 0 }

// RotationPipeline builds the pipeline turning an N×3 cloud by a.
//
// Implementation:
//   - Stage 1: Transpose (N×3 → 3×N, one point per column).
//   - Stage 2: AppendConstantRow(1) (homogeneous 4×N).
//   - Stage 3: RotateX, RotateY, RotateZ, each only for a non-zero angle.
//   - Stage 4: DropLastRow (3×N), Transpose (N×3).
//
// Complexity:
//   - Building O(1); executing O(N) per stage.
func RotationPipeline(a Angles) Pipeline {
	p := NewPipeline(Transpose{}, AppendConstantRow{Value: 1})
	if a.X != 0 {
		p = p.AddHandler(RotateX(a.X))
	}
	if a.Y != 0 {
		p = p.AddHandler(RotateY(a.Y))
	}
	if a.Z != 0 {
		p = p.AddHandler(RotateZ(a.Z))
	}

	return p.AddHandler(DropLastRow{}).AddHandler(Transpose{})
}

// Rotate turns an N×3 cloud about the origin by rx, ry, rz degrees (X, then Y, then Z).
// The result has the same shape as cloud.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when cloud is not N×3.
func Rotate(cloud *matrix.Dense, rx, ry, rz float64) (*matrix.Dense, error) {
	if err := matrix.ValidateCols(cloud, pointDim); err != nil {
		return nil, fmt.Errorf("Rotate: %w", err)
	}

	return RotationPipeline(Angles{X: rx, Y: ry, Z: rz}).Execute(cloud)
}

// CentroidPipeline wraps inner between Translate(-centroid) and Translate(+centroid),
// so inner operates on a cloud centred at the origin.
func CentroidPipeline(centroid []float64, inner Handler) Pipeline {
	neg := make([]float64, len(centroid))
	pos := make([]float64, len(centroid))
	for j, v := range centroid {
		neg[j], pos[j] = -v, v
	}

	return NewPipeline(Translate{Offset: neg}, inner, Translate{Offset: pos})
}

// RotateAboutCentroid returns cloud rotated about its centroid.
// The centroid of the result equals the centroid of cloud (up to rounding).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when cloud is not N×3.
func RotateAboutCentroid(cloud *matrix.Dense, a Angles) (*matrix.Dense, error) {
	if err := matrix.ValidateCols(cloud, pointDim); err != nil {
		return nil, fmt.Errorf("RotateAboutCentroid: %w", err)
	}
	centroid, err := matrix.ColumnMeans(cloud)
	if err != nil {
		return nil, fmt.Errorf("RotateAboutCentroid: %w", err)
	}

	return CentroidPipeline(centroid, RotationPipeline(a)).Execute(cloud)
}
