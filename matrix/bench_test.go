// Package matrix_test provides benchmarks for the kernels on the point-cloud
// hot path, using deterministic random clouds.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cloudalign/matrix"
)

// benchPoints are the cloud sizes to benchmark.
var benchPoints = []int{1_000, 10_000, 100_000}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkS []string
)

func benchCloud(b *testing.B, n int) *matrix.Dense {
	b.Helper()

	return RandDense(b, n, 3, 1337)
}

func BenchmarkHomogeneousRotate(b *testing.B) {
	R, err := matrix.NewIdentity(4)
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			X := benchCloud(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cols, _ := matrix.Transpose(X)
				h, _ := matrix.AppendRow(cols, 1)
				r, err := matrix.Mul(R, h)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = r
			}
		})
	}
}

func BenchmarkCovariance(b *testing.B) {
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			X := benchCloud(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, _, err := matrix.Covariance(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = c
			}
		})
	}
}

func BenchmarkFormatParse(b *testing.B) {
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			X := benchCloud(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = X.FormatRows()
				m, err := matrix.ParseRows(sinkS)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
