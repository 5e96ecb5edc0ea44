// SPDX-License-Identifier: MIT

// Package matrix offers the immutable dense matrix that point-cloud transforms
// are built from.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container whose shape is fixed at construction.
//     There are no exported mutators: every operation returns a new *Dense.
//   - The kernels the transforms consume: Mul, Transpose, AppendRow, DropLastRow,
//     Scale, row broadcasts (AddRowVector/SubRowVector) and the statistics used by
//     principal-axis alignment (ColumnMeans, CenterColumns, Covariance).
//   - The point-cloud text codec: ParseRows reads whitespace-separated rows,
//     FormatRows/Format/WriteTo write them back with an exact float64 round-trip.
//   - A copy-based bridge to gonum (ToGonum, ToSymDense, FromGonum, Inverse).
//
// Errors are package-level sentinels (errors.go) matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
