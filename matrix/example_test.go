// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cloudalign/matrix"
)

// ExampleParseRows reads a three-point cloud and writes it back.
func ExampleParseRows() {
	m, err := matrix.ParseRows([]string{"0 0 0", "1 1 1", "0.5 0.5 0.5"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m.Format(matrix.WithLineSeparator("\n")))
	// Output:
	// 0.0 0.0 0.0
	// 1.0 1.0 1.0
	// 0.5 0.5 0.5
}

// ExampleAppendRow lifts a 3×N block of column points to homogeneous coordinates.
func ExampleAppendRow() {
	pts := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	h, _ := matrix.AppendRow(pts, 1)
	fmt.Println(h.Rows(), h.Cols())
	fmt.Print(h.Format(matrix.WithLineSeparator("\n")))
	// Output:
	// 4 2
	// 1.0 2.0
	// 3.0 4.0
	// 5.0 6.0
	// 1.0 1.0
}

// ExampleMul shows the shape rule R×K · K×C = R×C.
func ExampleMul() {
	a := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := matrix.MustFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c.Format(matrix.WithLineSeparator("\n")))

	_, err := matrix.Mul(a, a)
	fmt.Println(err != nil)
	// Output:
	// 58.0 64.0
	// 139.0 154.0
	// true
}
