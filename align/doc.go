// Package align re-orients point clouds along their principal axes.
//
// Principal-axis alignment finds the three orthogonal directions of a cloud's
// spatial spread (the eigenvectors of its scatter, ordered by descending
// eigenvalue) and rotates the cloud about its centroid so that:
//
//   - the dominant axis lies along Y (the vertical),
//   - the second axis lies along X,
//   - the weakest axis lies along Z.
//
// Flipping negates the dominant axis first, which mirrors the result upside down.
// The centroid is preserved exactly up to rounding and the output has the
// shape of the input.
//
// The decomposition is delegated to gonum: by default stat.PC (an SVD of the
// centred points), or a symmetric eigendecomposition of the sample covariance
// with WithMethod(MethodCovariance). Both return the same axes up to sign.
//
// Degenerate clouds (collinear, planar with equal spread, coincident points)
// have repeated eigenvalues. Their axes are whatever the solver returns for
// that input; the package does not try to pick a canonical basis.
//
// Quick start:
//
//	aligned, err := align.AlignVertical(cloud, false)
//
// or, to inspect the decomposition:
//
//	res, err := align.New(align.WithMethod(align.MethodCovariance)).Align(cloud, true)
//	fmt.Println(res.Eigenvalues, res.Centroid)
package align
