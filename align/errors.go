// SPDX-License-Identifier: MIT

package align

import "errors"

var (
	// ErrInsufficientPoints indicates fewer than three points; a 3-axis
	// decomposition is undefined below that.
	ErrInsufficientPoints = errors.New("align: at least 3 points are required")

	// ErrDecompositionFailed indicates the eigen/SVD solver did not converge.
	ErrDecompositionFailed = errors.New("align: decomposition failed")

	// ErrUnknownMethod indicates a Method outside the supported set.
	ErrUnknownMethod = errors.New("align: unknown decomposition method")
)
