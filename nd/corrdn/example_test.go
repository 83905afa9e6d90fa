package corrdn_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/nd/corrdn"
	"github.com/cwbudde/algo-ndfilter/nd/shape"
)

func ExampleCorrDn() {
	// 3x3 input, column-major: columns [1 2 3], [4 5 6], [7 8 9].
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	kernel := []float64{1, 1, 1, 1} // 2x2 all-ones

	out, outDims, err := corrdn.CorrDn(in, kernel, shape.Dims{3, 3}, shape.Dims{2, 2}, shape.Steps{1, 1, 1})
	if err != nil {
		panic(err)
	}

	fmt.Println(outDims)
	fmt.Println(out)

	// Output:
	// 2x2x1x1
	// [12 16 24 28]
}

func ExampleCorrDnTo() {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	kernel := []float64{1, 1}

	// Validate once, then sweep into a reused destination.
	v, err := shape.Validate(shape.Dims{8}, shape.Dims{2}, shape.Steps{3, 1, 1})
	if err != nil {
		panic(err)
	}

	dst := make([]float64, v.OutputDims().NumElements())
	if err := corrdn.CorrDnTo(dst, in, kernel, v); err != nil {
		panic(err)
	}

	fmt.Println(dst)

	// Output:
	// [3 9 15]
}
