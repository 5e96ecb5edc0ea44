// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"

	"github.com/katalvlaran/cloudalign/matrix"
	"github.com/katalvlaran/cloudalign/transform"
)

// ExampleRotate turns the point (1,1,1) a quarter turn about Y.
func ExampleRotate() {
	cloud := matrix.MustFromRows([][]float64{{1, 1, 1}})
	out, err := transform.Rotate(cloud, 0, 90, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	row, _ := out.RowVector(0)
	fmt.Printf("%.6f %.6f %.6f\n", row[0], row[1], row[2])
	// Output:
	// 1.000000 1.000000 -1.000000
}

// ExamplePipeline_AddHandler builds two pipelines from a shared prefix.
func ExamplePipeline_AddHandler() {
	base := transform.NewPipeline(transform.Transpose{}, transform.AppendConstantRow{Value: 1})
	spinX := base.AddHandler(transform.RotateX(45))
	spinZ := base.AddHandler(transform.RotateZ(45))

	fmt.Println(base)
	fmt.Println(spinX)
	fmt.Println(spinZ)
	// Output:
	// Pipeline[Transpose AppendConstantRow(1)]
	// Pipeline[Transpose AppendConstantRow(1) RotateX(45)]
	// Pipeline[Transpose AppendConstantRow(1) RotateZ(45)]
}
