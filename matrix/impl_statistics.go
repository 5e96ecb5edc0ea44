// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms principal-axis alignment builds on
//     (column means, centering, covariance) as deterministic compositions over
//     the canonical kernels (Mul/Transpose/Scale) and the row-broadcast kernels.
//
// Exposed API:
//   - ColumnMeans(X)   -> means          // per-column mean (the centroid of a point cloud)
//   - CenterColumns(X) -> (Xc, means)    // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)   // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-row matrices yield zero means and a no-op centering.

package matrix

import "fmt"

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnMeans returns the per-column mean of X (len = X.Cols()).
// For an N×3 point cloud this is the centroid. A 0×C matrix yields C zeros.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.r, X.c
	means := make([]float64, c)
	if r == 0 {
		return means, nil
	}

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means; reuse them to un-center later via AddRowVector.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := SubRowVector(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ · Xc)/(r−1).
//
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator).
//   - Stage 2: Center columns once; then Transpose → Mul → Scale.
//
// Behavior highlights:
//   - Symmetric c×c output; diagonal equals per-column sample variances.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Covariance(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance,
			fmt.Errorf("need at least 2 rows, got %d: %w", X.r, ErrDimensionMismatch))
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
