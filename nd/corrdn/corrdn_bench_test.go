package corrdn

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-ndfilter/internal/testutil"
	"github.com/cwbudde/algo-ndfilter/nd/shape"
)

// Benchmark the correlation sweep with various input/kernel sizes.
func BenchmarkCorrDnTo(b *testing.B) {
	cases := []struct {
		in     shape.Dims
		kernel shape.Dims
		steps  shape.Steps
	}{
		{shape.Dims{64, 64}, shape.Dims{3, 3}, shape.Steps{1, 1, 1}},
		{shape.Dims{64, 64}, shape.Dims{9, 9}, shape.Steps{1, 1, 1}},
		{shape.Dims{256, 256}, shape.Dims{5, 5}, shape.Steps{1, 1, 1}},
		{shape.Dims{256, 256}, shape.Dims{5, 5}, shape.Steps{2, 2, 1}},
		{shape.Dims{32, 32, 16}, shape.Dims{3, 3, 3}, shape.Steps{1, 1, 1}},
		{shape.Dims{32, 32, 16}, shape.Dims{5, 5, 5}, shape.Steps{2, 2, 2}},
		{shape.Dims{64, 64, 1, 8}, shape.Dims{7, 7}, shape.Steps{1, 1, 1}},
	}

	for _, c := range cases {
		v, err := shape.Validate(c.in, c.kernel, c.steps)
		if err != nil {
			b.Fatalf("validate: %v", err)
		}

		in := testutil.Noise(1, 1, c.in.NumElements())
		kernel := testutil.Noise(2, 1, c.kernel.NumElements())
		dst := make([]float64, v.OutputDims().NumElements())

		b.Run(fmt.Sprintf("in=%v_kernel=%v_steps=%v", c.in, c.kernel, c.steps), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := CorrDnTo(dst, in, kernel, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
