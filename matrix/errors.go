// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped) and tests
// MUST check them via errors.Is. No kernel panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("Op", ErrX) so the
// message reads "Op: matrix: ..." while errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> negative dims -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a broadcast vector of wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidShape is returned when an operation needs at least one row or
	// column but the operand has none (DropLastRow on a 0×C matrix).
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNumberFormat signals a text token that does not parse as a decimal number.
	ErrNumberFormat = errors.New("matrix: invalid number format")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (text ingestion, literal construction).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrSingular is returned when inversion meets a singular (or numerically
	// singular) operand.
	ErrSingular = errors.New("matrix: singular matrix")
)

// ALIASES kept for the vocabulary used by callers at the I/O boundary.
// They are the same sentinels, so errors.Is matches either name.

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrShapeMismatch names a ragged text row; it is ErrDimensionMismatch.
var ErrShapeMismatch = ErrDimensionMismatch
