// Package corrdn performs "valid" correlation with down-sampling over
// column-major N-dimensional float64 buffers.
//
// The kernel is slid across every window position where it fully overlaps the
// input, stepping by a per-axis down-sampling step, and the inner product of
// kernel and window is written to the output. The kernel is applied without
// reversal, so this is a correlation, not a true convolution; callers wanting
// convolution semantics must flip the kernel themselves.
//
// Up to three axes are convolved. A fourth input axis, when present, is
// pass-through: each slice along it is correlated independently with the same
// kernel and written to the matching output slice.
//
// # Usage
//
// For one-shot use, CorrDn validates, allocates, and sweeps:
//
//	out, outDims, err := corrdn.CorrDn(in, kernel, inDims, kernelDims, steps)
//
// For repeated sweeps into a reused destination, validate once and call
// CorrDnTo:
//
//	v, err := shape.Validate(inDims, kernelDims, steps)
//	dst := make([]float64, v.OutputDims().NumElements())
//	err = corrdn.CorrDnTo(dst, in, kernel, v)
package corrdn

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndfilter/nd/shape"
)

// Errors returned by correlation functions.
var (
	ErrInputLength  = errors.New("corrdn: input length does not match dims")
	ErrKernelLength = errors.New("corrdn: kernel length does not match dims")
	ErrOutputLength = errors.New("corrdn: output length does not match resolved dims")
)

// Kernel rows at or above this length go through vecmath.DotProduct;
// shorter rows use the scalar loop.
const dotThreshold = 4

// CorrDn correlates in with kernel at every fully-overlapping window,
// down-sampling window origins by steps, and returns a freshly allocated
// output buffer along with its resolved dims.
//
// Buffers are flat column-major; see the shape package for the layout and
// validation rules. in and kernel are only read; no buffer is written or
// allocated before validation succeeds.
func CorrDn(in, kernel []float64, inDims, kernelDims shape.Dims, steps shape.Steps) ([]float64, shape.Dims, error) {
	v, err := shape.Validate(inDims, kernelDims, steps)
	if err != nil {
		return nil, nil, err
	}
	if err := checkInputLengths(in, kernel, v); err != nil {
		return nil, nil, err
	}

	outDims := v.OutputDims()
	dst := make([]float64, outDims.NumElements())
	sweep(dst, in, kernel, v)

	return dst, outDims, nil
}

// CorrDnTo correlates in with kernel into a pre-allocated destination.
// dst must have exactly v.OutputDims().NumElements() elements; dst is not
// touched when any length check fails. Each destination element is written
// exactly once, so dst needs no zeroing beforehand.
func CorrDnTo(dst, in, kernel []float64, v shape.Validated) error {
	if err := checkInputLengths(in, kernel, v); err != nil {
		return err
	}
	if want := v.OutputDims().NumElements(); len(dst) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrOutputLength, len(dst), want)
	}

	sweep(dst, in, kernel, v)
	return nil
}

func checkInputLengths(in, kernel []float64, v shape.Validated) error {
	if want := v.InputDims().NumElements(); len(in) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrInputLength, len(in), want)
	}
	if want := v.KernelDims().NumElements(); len(kernel) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrKernelLength, len(kernel), want)
	}
	return nil
}

// sweep fills dst with the correlation results. Output coordinates are walked
// with the first axis innermost; for each one, the window origin is the
// coordinate scaled by the per-axis step, and the kernel taps are accumulated
// left to right in plain float64. The first-axis run is contiguous in both
// input and kernel, so long runs use the vectorized dot product.
func sweep(dst, in, kernel []float64, v shape.Validated) {
	id := v.InputDims()
	kd := v.KernelDims()
	od := v.OutputDims()
	st := v.Steps()

	xi, yi := id[0], id[1]
	xk, yk, tk := kd[0], kd[1], kd[2]
	xo, yo, to := od[0], od[1], od[2]
	xStep, yStep, tStep := st[0], st[1], st[2]

	inSlice := xi * yi * id[2]
	outSlice := xo * yo * to
	useDot := xk >= dotThreshold

	for s := 0; s < id[3]; s++ {
		inBase := s * inSlice
		outBase := s * outSlice

		for t := 0; t < to; t++ {
			tOrigin := t * tStep
			for y := 0; y < yo; y++ {
				yOrigin := y * yStep
				for x := 0; x < xo; x++ {
					xOrigin := x * xStep

					sum := 0.0
					for ft := 0; ft < tk; ft++ {
						for fy := 0; fy < yk; fy++ {
							row := inBase + xOrigin + (yOrigin+fy)*xi + (tOrigin+ft)*xi*yi
							krow := fy*xk + ft*xk*yk

							if useDot {
								sum += vecmath.DotProduct(in[row:row+xk], kernel[krow:krow+xk])
							} else {
								for fx := 0; fx < xk; fx++ {
									sum += in[row+fx] * kernel[krow+fx]
								}
							}
						}
					}

					dst[outBase+x+y*xo+t*xo*yo] = sum
				}
			}
		}
	}
}
