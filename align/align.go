// SPDX-License-Identifier: MIT
// Package: align
//
// Purpose:
//   - Rotate an N×3 cloud about its centroid so its principal axes land on (Y, X, Z).

package align

import (
	"fmt"

	"github.com/katalvlaran/cloudalign/matrix"
)

const (
	pointDim  = 3
	minPoints = 3
)

// Result carries the alignment and the decomposition behind it.
type Result struct {
	// Centroid is the column mean of the input (length 3).
	Centroid []float64
	// Eigenvalues are the scatter variances along each axis, descending.
	Eigenvalues []float64
	// Eigenvectors holds the principal axes as columns, in Eigenvalues order.
	Eigenvectors *matrix.Dense
	// Rotation is M: columns (second, ±largest, smallest) eigenvector.
	Rotation *matrix.Dense
	// Aligned is the re-oriented cloud, same shape as the input.
	Aligned *matrix.Dense
}

// Aligner performs principal-axis alignment. The zero value is not usable; call New.
// An Aligner is immutable and safe for concurrent use.
type Aligner struct {
	opts Options
}

// New returns an Aligner configured by opts.
func New(opts ...Option) *Aligner {
	return &Aligner{opts: gatherOptions(opts...)}
}

// Method reports the configured decomposition.
func (a *Aligner) Method() Method { return a.opts.method }

// Align re-orients cloud so its dominant axis is vertical.
//
// Implementation:
//   - Stage 1: centroid = column means; Xc = cloud − centroid.
//   - Stage 2: principal axes v0 ≥ v1 ≥ v2 (by eigenvalue) from the configured Method.
//   - Stage 3: M = [v1 | ±v0 | v2] (v0 negated when flip).
//   - Stage 4: aligned = (M⁻¹ · Xcᵀ)ᵀ + centroid.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (cloud not N×3),
//     ErrInsufficientPoints (N < 3), ErrDecompositionFailed, matrix.ErrSingular.
//
// Complexity:
//   - Time O(N), Space O(N) for the fixed dimension 3.
func (a *Aligner) Align(cloud *matrix.Dense, flip bool) (*Result, error) {
	if err := matrix.ValidateCols(cloud, pointDim); err != nil {
		return nil, fmt.Errorf("Align: %w", err)
	}
	if cloud.Rows() < minPoints {
		return nil, fmt.Errorf("Align: got %d points: %w", cloud.Rows(), ErrInsufficientPoints)
	}

	// Stage 1
	centered, centroid, err := matrix.CenterColumns(cloud)
	if err != nil {
		return nil, fmt.Errorf("Align: %w", err)
	}

	// Stage 2
	vals, vecs, err := principalAxes(cloud, a.opts.method)
	if err != nil {
		return nil, fmt.Errorf("Align(%v): %w", a.opts.method, err)
	}

	// Stage 3
	M, err := rotationFromAxes(vecs, flip)
	if err != nil {
		return nil, fmt.Errorf("Align: %w", err)
	}

	// Stage 4
	aligned, err := applyInverse(M, centered, centroid)
	if err != nil {
		return nil, fmt.Errorf("Align: %w", err)
	}

	return &Result{
		Centroid:     centroid,
		Eigenvalues:  vals,
		Eigenvectors: vecs,
		Rotation:     M,
		Aligned:      aligned,
	}, nil
}

// rotationFromAxes lays out M = [v1 | ±v0 | v2] from column-sorted axes.
func rotationFromAxes(vecs *matrix.Dense, flip bool) (*matrix.Dense, error) {
	order := [pointDim]int{1, 0, 2}
	sign := [pointDim]float64{1, 1, 1}
	if flip {
		sign[1] = -1
	}

	rows := make([][]float64, pointDim)
	for i := range rows {
		rows[i] = make([]float64, pointDim)
		for k, src := range order {
			v, err := vecs.At(i, src)
			if err != nil {
				return nil, err
			}
			rows[i][k] = sign[k] * v
		}
	}

	return matrix.NewFromRows(rows)
}

// applyInverse rotates the centred points by M⁻¹ and restores the centroid.
func applyInverse(M, centered *matrix.Dense, centroid []float64) (*matrix.Dense, error) {
	Minv, err := matrix.Inverse(M)
	if err != nil {
		return nil, err
	}
	cols, err := matrix.Transpose(centered)
	if err != nil {
		return nil, err
	}
	rotated, err := matrix.Mul(Minv, cols)
	if err != nil {
		return nil, err
	}
	back, err := matrix.Transpose(rotated)
	if err != nil {
		return nil, err
	}

	return matrix.AddRowVector(back, centroid)
}

// AlignVertical aligns cloud with the default Aligner and returns only the cloud.
func AlignVertical(cloud *matrix.Dense, flip bool) (*matrix.Dense, error) {
	res, err := New().Align(cloud, flip)
	if err != nil {
		return nil, err
	}

	return res.Aligned, nil
}
