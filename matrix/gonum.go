// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge *Dense to gonum (gonum.org/v1/gonum/mat) for the numerically
//     demanding steps this package does not implement itself: pivoted inversion
//     and symmetric eigendecomposition.
//   - Keep the bridge copy-based so a *Dense never shares storage with a
//     mutable gonum value.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum    = "ToGonum"
	opToSymDense = "ToSymDense"
	opInverse    = "Inverse"
)

// ToGonum copies m into a new *mat.Dense.
// gonum forbids zero-sized matrices, so an empty m is ErrInvalidShape.
// Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Empty() {
		return nil, matrixErrorf(opToGonum, ErrInvalidShape)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// ToSymDense copies a symmetric m into a *mat.SymDense.
// Symmetry is checked within DefaultEpsilon; gonum reads the upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrInvalidShape (0×0).
func ToSymDense(m *Dense) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, DefaultEpsilon); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	if m.Empty() {
		return nil, matrixErrorf(opToSymDense, ErrInvalidShape)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewSymDense(m.r, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) *Dense {
	r, c := a.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = a.At(i, j)
		}
	}

	return out
}

// Inverse returns m⁻¹ computed by gonum's LU factorization with partial pivoting.
//
// Behavior highlights:
//   - Pivoting makes permutation-like rotation matrices (zero leading pivot)
//     invertible, which a non-pivoting Doolittle scheme would reject.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidShape (0×0),
//     ErrSingular when gonum reports a singular or ill-conditioned operand.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return FromGonum(&inv), nil
}
