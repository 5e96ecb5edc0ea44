// SPDX-License-Identifier: MIT
// Package: align
//
// Purpose:
//   - Compute the principal axes of an N×3 cloud with gonum.
//   - Normalize both solver outputs to one shape: eigenvalues descending,
//     eigenvectors as the matching columns of a 3×3 matrix.

package align

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cloudalign/matrix"
)

// principalAxes dispatches on method. A decomposition whose variances or
// directions are not finite (the spread overflowed float64) is reported as
// ErrDecompositionFailed by both methods.
func principalAxes(cloud *matrix.Dense, method Method) ([]float64, *matrix.Dense, error) {
	var (
		vals []float64
		vecs *matrix.Dense
		err  error
	)
	switch method {
	case MethodSVD:
		vals, vecs, err = principalAxesSVD(cloud)
	case MethodCovariance:
		vals, vecs, err = principalAxesCovariance(cloud)
	default:
		return nil, nil, fmt.Errorf("%v: %w", method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, nil, err
	}
	if !allFinite(vals) || !allFinite(vecs.Rows2D()...) {
		return nil, nil, fmt.Errorf("non-finite variance %v: %w", vals, ErrDecompositionFailed)
	}

	return vals, vecs, nil
}

func allFinite(rows ...[]float64) bool {
	for _, row := range rows {
		for _, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}
	return true
}

// principalAxesSVD runs stat.PC. PC centres the data itself and already
// returns directions sorted by descending variance.
//
// Complexity:
//   - Time O(N·3²), Space O(N·3).
func principalAxesSVD(cloud *matrix.Dense) ([]float64, *matrix.Dense, error) {
	g, err := matrix.ToGonum(cloud)
	if err != nil {
		return nil, nil, err
	}
	var pc stat.PC
	if ok := pc.PrincipalComponents(g, nil); !ok {
		return nil, nil, fmt.Errorf("stat.PC: %w", ErrDecompositionFailed)
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	vars := pc.VarsTo(nil)

	return vars, matrix.FromGonum(&vecs), nil
}

// principalAxesCovariance eigendecomposes the sample covariance.
//
// Implementation:
//   - Stage 1: C = Xcᵀ·Xc/(N−1) via matrix.Covariance (exactly symmetric).
//   - Stage 2: mat.EigenSym on C; eigenvalues come back ascending.
//   - Stage 3: argsort the eigenvalues and reorder columns descending.
func principalAxesCovariance(cloud *matrix.Dense) ([]float64, *matrix.Dense, error) {
	cov, _, err := matrix.Covariance(cloud)
	if err != nil {
		return nil, nil, err
	}
	sym, err := matrix.ToSymDense(cov)
	if err != nil {
		return nil, nil, err
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("mat.EigenSym: %w", ErrDecompositionFailed)
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	n := len(vals)
	inds := make([]int, n)
	floats.Argsort(vals, inds) // ascending, in place

	sortedVals := make([]float64, n)
	sortedVecs := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		src := inds[n-1-k]
		sortedVals[k] = vals[n-1-k]
		for i := 0; i < n; i++ {
			sortedVecs.Set(i, k, ev.At(i, src))
		}
	}

	return sortedVals, matrix.FromGonum(sortedVecs), nil
}
