// SPDX-License-Identifier: MIT
// Package matrix provides the handful of linear-algebra kernels point-cloud
// transforms consume: matrix product, transpose, scalar scaling and the
// homogeneous-row helpers AppendRow / DropLastRow. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel is pure: operands are never mutated, results are freshly allocated.
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opAppendRow   = "AppendRow"
	opDropLastRow = "DropLastRow"
)

// matrixErrorf wraps err with an operation tag, keeping the cause reachable via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) → a.Cols must equal b.Rows.
//   - Stage 2: allocate C (a.Rows × b.Cols) and accumulate with a fixed
//     i→k→j triple loop over the flat row-major buffers.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for C.
//   - Zero-sized operands are legal (e.g. 4×4 · 4×0 = 4×0).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, k, j                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// T[j][i] = M[i][j]; shape c×r. The only failure is a nil operand.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// AppendRow returns an (r+1)×c matrix equal to m on its first r rows and
// whose new last row is filled with value.
//
// Behavior highlights:
//   - Turns a 3×N block of points into 4×N homogeneous coordinates with value=1.
//
// Complexity:
//   - Time O((r+1)*c), Space O((r+1)*c).
func AppendRow(m *Dense, value float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	res, err := NewDense(m.r+1, m.c)
	if err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	n := copy(res.data, m.data) // rows 0..r-1 share the same flat layout
	for k := n; k < len(res.data); k++ {
		res.data[k] = value
	}

	return res, nil
}

// DropLastRow returns an (r−1)×c matrix holding the first r−1 rows of m.
//
// Errors:
//   - ErrInvalidShape when m has no rows.
//
// Complexity:
//   - Time O((r-1)*c), Space O((r-1)*c).
func DropLastRow(m *Dense) (*Dense, error) {
	if err := ValidateHasRows(m); err != nil {
		return nil, matrixErrorf(opDropLastRow, err)
	}
	res, err := NewDense(m.r-1, m.c)
	if err != nil {
		return nil, matrixErrorf(opDropLastRow, err)
	}
	copy(res.data, m.data[:(m.r-1)*m.c])

	return res, nil
}
