// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloudalign/matrix"
)

// epsTight is the tolerance for results that only suffer rounding noise.
const epsTight = 1e-12

// MustRows builds a *Dense from a literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustDims asserts the shape of m.
func MustDims(t testing.TB, m *matrix.Dense, r, c int) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}

// CompareExact asserts m equals want element by element.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, m.Rows2D())
}

// CompareClose asserts a and b have the same shape and agree within atol.
func CompareClose(t testing.TB, a, b *matrix.Dense, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%s\nvs\n%s", a, b)
}

// RandDense returns an r×c matrix with entries uniform in [-10, 10).
// Deterministic for a given seed.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	if r == 0 { // a literal cannot carry the column count of an empty matrix
		m, err := matrix.NewDense(0, c)
		require.NoError(t, err)
		return m
	}
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return MustRows(t, rows)
}
