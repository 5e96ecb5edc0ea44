// Package transform composes rigid geometric transforms over point clouds.
//
// The transform package provides:
//
//   - Handler, the single-capability stage interface: Process(*matrix.Dense).
//   - Stateless handler variants: RotateAxis (homogeneous 4×4 rotation about X, Y
//     or Z, angle in degrees), Transpose, AppendConstantRow, DropLastRow, Translate
//     and the HandlerFunc adapter.
//   - Pipeline, an ordered list of handlers folded left to right. AddHandler
//     never mutates its receiver, so a pipeline can be extended in several
//     directions and reused across inputs.
//   - Rotate / RotateAboutCentroid, which assemble the canonical rotation
//     pipeline for an N×3 cloud:
//
//     Transpose → AppendConstantRow(1) → RotX → RotY → RotZ → DropLastRow → Transpose
//
// Rotations follow the right-hand rule. Rotate turns the cloud about the origin;
// RotateAboutCentroid turns it about its own centroid. Both return a new matrix.
//
// Every value in this package is immutable after construction and safe for
// concurrent use.
package transform
