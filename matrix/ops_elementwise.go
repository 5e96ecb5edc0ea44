// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row-broadcast and comparison kernels used by centering and
//     translation: every point (row) shifted by the same vector.
//   - Keep all loops deterministic over the flat row-major buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

const (
	opAddRowVector = "AddRowVector"
	opSubRowVector = "SubRowVector"
	opAllClose     = "AllClose"
)

// ewBroadcastRow computes out[i,j] = X[i,j] + sign*v[j].
// Shared by AddRowVector/SubRowVector; sign is ±1 (enforced by callers).
func ewBroadcastRow(X *Dense, v []float64, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateVecLen(v, X.c); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	r, c := X.r, X.c
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = X.data[base+j] + sign*v[j]
		}
	}

	return out, nil
}

// AddRowVector returns X with v added to every row (out[i,j] = X[i,j] + v[j]).
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(v) != X.Cols().
// Complexity: O(r*c).
func AddRowVector(X *Dense, v []float64) (*Dense, error) {
	return ewBroadcastRow(X, v, +1, opAddRowVector)
}

// SubRowVector returns X with v subtracted from every row (out[i,j] = X[i,j] − v[j]).
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(v) != X.Cols().
// Complexity: O(r*c).
func SubRowVector(X *Dense, v []float64) (*Dense, error) {
	return ewBroadcastRow(X, v, -1, opSubRowVector)
}

// AllClose checks element-wise |a−b| ≤ atol + rtol*|b| for identical shapes.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances are ErrNaNInf.
//
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range a.data {
		if math.Abs(a.data[k]-b.data[k]) > atol+rtol*math.Abs(b.data[k]) {
			return false, nil
		}
	}

	return true, nil
}
