// SPDX-License-Identifier: MIT
// Package: transform
//
// Purpose:
//   - Define the Handler contract and its concrete, stateless variants.
//   - Precompute every rotation matrix once, at construction.
//
// Contract:
//   - Process never mutates its input and returns a fresh *matrix.Dense.
//   - On error the result is nil; the cause is a matrix/transform sentinel.

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cloudalign/matrix"
)

// Handler is one stage of a Pipeline.
type Handler interface {
	Process(in *matrix.Dense) (*matrix.Dense, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(in *matrix.Dense) (*matrix.Dense, error)

// Process calls f(in).
func (f HandlerFunc) Process(in *matrix.Dense) (*matrix.Dense, error) { return f(in) }

// Axis selects a coordinate axis for RotateAxis.
type Axis int

const (
	// X is the first coordinate axis.
	X Axis = iota
	// Y is the second coordinate axis (vertical after alignment).
	Y
	// Z is the third coordinate axis.
	Z
)

// String returns "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// homogeneousDim is the size of a homogeneous 3D transform.
const homogeneousDim = 4

// RotateAxis rotates 4×N homogeneous column points about a coordinate axis.
// The 4×4 rotation matrix is built once by NewRotateAxis.
type RotateAxis struct {
	axis    Axis
	degrees float64
	rot     *matrix.Dense
}

// NewRotateAxis builds the rotation handler for axis by degrees (right-hand rule).
//
// Implementation:
//   - Stage 1: θ = degrees·π/180, c = cos θ, s = sin θ.
//   - Stage 2: lay out the homogeneous matrix for the axis:
//     X: [[1,0,0,0],[0,c,-s,0],[0,s,c,0],[0,0,0,1]]
//     Y: [[c,0,s,0],[0,1,0,0],[-s,0,c,0],[0,0,0,1]]
//     Z: [[c,-s,0,0],[s,c,0,0],[0,0,1,0],[0,0,0,1]]
//
// Errors:
//   - ErrUnknownAxis for an axis outside {X, Y, Z}.
func NewRotateAxis(axis Axis, degrees float64) (*RotateAxis, error) {
	theta := degrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)

	var rows [][]float64
	switch axis {
	case X:
		rows = [][]float64{
			{1, 0, 0, 0},
			{0, c, -s, 0},
			{0, s, c, 0},
			{0, 0, 0, 1},
		}
	case Y:
		rows = [][]float64{
			{c, 0, s, 0},
			{0, 1, 0, 0},
			{-s, 0, c, 0},
			{0, 0, 0, 1},
		}
	case Z:
		rows = [][]float64{
			{c, -s, 0, 0},
			{s, c, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		}
	default:
		return nil, fmt.Errorf("NewRotateAxis(%v): %w", axis, ErrUnknownAxis)
	}
	rot, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewRotateAxis(%v): %w", axis, err)
	}

	return &RotateAxis{axis: axis, degrees: degrees, rot: rot}, nil
}

// mustRotate panics on an invalid axis; the exported wrappers pass constants.
func mustRotate(axis Axis, degrees float64) *RotateAxis {
	h, err := NewRotateAxis(axis, degrees)
	if err != nil {
		panic(err)
	}

	return h
}

// RotateX returns a rotation about the X axis by degrees.
func RotateX(degrees float64) *RotateAxis { return mustRotate(X, degrees) }

// RotateY returns a rotation about the Y axis by degrees.
func RotateY(degrees float64) *RotateAxis { return mustRotate(Y, degrees) }

// RotateZ returns a rotation about the Z axis by degrees.
func RotateZ(degrees float64) *RotateAxis { return mustRotate(Z, degrees) }

// Axis reports the rotation axis.
func (h *RotateAxis) Axis() Axis { return h.axis }

// Degrees reports the rotation angle in degrees.
func (h *RotateAxis) Degrees() float64 { return h.degrees }

// Matrix returns the 4×4 homogeneous rotation matrix.
func (h *RotateAxis) Matrix() *matrix.Dense { return h.rot }

// String names the stage, e.g. "RotateY(90)".
func (h *RotateAxis) String() string {
	return fmt.Sprintf("Rotate%v(%g)", h.axis, h.degrees)
}

// Process returns R·in. in must be 4×N (homogeneous column points).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (h *RotateAxis) Process(in *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(in); err != nil {
		return nil, err
	}
	if in.Rows() != homogeneousDim {
		return nil, fmt.Errorf("%v: want %d rows, got %d: %w",
			h, homogeneousDim, in.Rows(), matrix.ErrDimensionMismatch)
	}

	return matrix.Mul(h.rot, in)
}

// Transpose swaps rows and columns.
type Transpose struct{}

// Process returns inᵀ.
func (Transpose) Process(in *matrix.Dense) (*matrix.Dense, error) { return matrix.Transpose(in) }

// String names the stage.
func (Transpose) String() string { return "Transpose" }

// AppendConstantRow appends one row filled with Value.
// With Value 1 it lifts 3×N column points to homogeneous coordinates.
type AppendConstantRow struct {
	Value float64
}

// Process returns in with a trailing row of Value.
func (h AppendConstantRow) Process(in *matrix.Dense) (*matrix.Dense, error) {
	return matrix.AppendRow(in, h.Value)
}

// String names the stage, e.g. "AppendConstantRow(1)".
func (h AppendConstantRow) String() string { return fmt.Sprintf("AppendConstantRow(%g)", h.Value) }

// DropLastRow removes the last row (the homogeneous coordinate).
type DropLastRow struct{}

// Process returns in without its last row. Errors: ErrInvalidShape on 0 rows.
func (DropLastRow) Process(in *matrix.Dense) (*matrix.Dense, error) { return matrix.DropLastRow(in) }

// String names the stage.
func (DropLastRow) String() string { return "DropLastRow" }

// Translate adds Offset to every row of an N×len(Offset) cloud.
type Translate struct {
	Offset []float64
}

// Process returns in + Offset (row broadcast).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (h Translate) Process(in *matrix.Dense) (*matrix.Dense, error) {
	return matrix.AddRowVector(in, h.Offset)
}

// String names the stage, e.g. "Translate[1 2 3]".
func (h Translate) String() string { return fmt.Sprintf("Translate%v", h.Offset) }

// handlerName returns a stage label for errors and traces.
func handlerName(h Handler) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", h)
}
