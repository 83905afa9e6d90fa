// Package shape derives and validates output extents for valid correlation
// with down-sampling over column-major N-dimensional buffers.
//
// Arrays have up to four axes: up to three convolved axes plus one optional
// pass-through axis that the kernel never extends into. Validation happens
// once, up front, and yields a Validated marker; the shape resolver and the
// correlation sweep are only reachable through that marker, so they never see
// unchecked dims.
//
// # Usage
//
//	v, err := shape.Validate(inDims, kernelDims, steps)
//	if err != nil {
//		return err
//	}
//	outDims := v.OutputDims()
package shape

import (
	"errors"
	"fmt"
	"strings"
)

// MaxRank is the maximum number of axes an array may have.
const MaxRank = 4

// MaxConvolvedAxes is the number of axes the kernel slides along. A fourth
// input axis, when present, is pass-through: each slice along it is
// correlated independently and copied to the matching output slice.
const MaxConvolvedAxes = 3

// Errors returned by Validate.
var (
	ErrInvalidDims    = errors.New("shape: invalid dims")
	ErrRankMismatch   = errors.New("shape: step count does not match convolved axes")
	ErrKernelTooLarge = errors.New("shape: kernel exceeds input extent")
	ErrInvalidStep    = errors.New("shape: step must be at least 1")
)

// Dims is an ordered sequence of axis extents, first axis fastest-varying
// (column-major). Rank 1 through 4; missing trailing axes count as extent 1.
type Dims []int

// Steps holds one down-sampling step per convolved axis. A step of 1
// evaluates every valid window position.
type Steps []int

// NumElements returns the product of all extents, or 0 for empty dims.
func (d Dims) NumElements() int {
	if len(d) == 0 {
		return 0
	}
	n := 1
	for _, ext := range d {
		n *= ext
	}
	return n
}

// Normalized returns a copy of d padded with trailing 1s to MaxRank axes.
func (d Dims) Normalized() Dims {
	out := Dims{1, 1, 1, 1}
	copy(out, d)
	return out
}

// ColMajorStrides returns the element stride of each axis in column-major
// order: stride[0] = 1, stride[i] = stride[i-1] * d[i-1].
func (d Dims) ColMajorStrides() []int {
	strides := make([]int, len(d))
	acc := 1
	for i, ext := range d {
		strides[i] = acc
		acc *= ext
	}
	return strides
}

// LinearIndex maps an axis coordinate tuple to the flat column-major index
// i0 + i1*d0 + i2*d0*d1 + i3*d0*d1*d2. len(coord) must not exceed len(d);
// missing trailing coordinates count as 0.
func (d Dims) LinearIndex(coord ...int) int {
	idx := 0
	acc := 1
	for i, ext := range d {
		if i < len(coord) {
			idx += coord[i] * acc
		}
		acc *= ext
	}
	return idx
}

// Equal reports whether d and other describe the same extents after
// normalization, so Dims{3, 3} equals Dims{3, 3, 1}.
func (d Dims) Equal(other Dims) bool {
	a, b := d.Normalized(), other.Normalized()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders dims as "3x3x1x1".
func (d Dims) String() string {
	parts := make([]string, len(d))
	for i, ext := range d {
		parts[i] = fmt.Sprintf("%d", ext)
	}
	return strings.Join(parts, "x")
}

// String renders steps as "2x2x1".
func (s Steps) String() string {
	parts := make([]string, len(s))
	for i, step := range s {
		parts[i] = fmt.Sprintf("%d", step)
	}
	return strings.Join(parts, "x")
}

// Validated carries dims and steps that passed Validate. It is the only way
// to reach OutputDims and the correlation sweep, so unchecked inputs cannot
// get that far.
type Validated struct {
	in     Dims
	kernel Dims
	steps  Steps
}

// Validate checks input dims, kernel dims, and steps against the valid
// correlation contract and returns a Validated marker on success. It reads no
// buffers and allocates nothing observable on failure.
func Validate(in, kernel Dims, steps Steps) (Validated, error) {
	if err := checkDims("input", in); err != nil {
		return Validated{}, err
	}
	if err := checkDims("kernel", kernel); err != nil {
		return Validated{}, err
	}
	if len(steps) != MaxConvolvedAxes {
		return Validated{}, fmt.Errorf("%w: got %d steps, want %d", ErrRankMismatch, len(steps), MaxConvolvedAxes)
	}

	nin := in.Normalized()
	nk := kernel.Normalized()
	if nk[MaxRank-1] != 1 {
		return Validated{}, fmt.Errorf("%w: kernel extends into pass-through axis (extent %d)", ErrInvalidDims, nk[MaxRank-1])
	}
	for i := 0; i < MaxConvolvedAxes; i++ {
		if nk[i] > nin[i] {
			return Validated{}, fmt.Errorf("%w: axis %d kernel %d > input %d", ErrKernelTooLarge, i, nk[i], nin[i])
		}
		if steps[i] < 1 {
			return Validated{}, fmt.Errorf("%w: axis %d step %d", ErrInvalidStep, i, steps[i])
		}
	}

	v := Validated{
		in:     nin,
		kernel: nk,
		steps:  Steps{steps[0], steps[1], steps[2]},
	}
	return v, nil
}

func checkDims(name string, d Dims) error {
	if len(d) == 0 || len(d) > MaxRank {
		return fmt.Errorf("%w: %s rank %d, want 1..%d", ErrInvalidDims, name, len(d), MaxRank)
	}
	for i, ext := range d {
		if ext < 1 {
			return fmt.Errorf("%w: %s axis %d extent %d", ErrInvalidDims, name, i, ext)
		}
	}
	return nil
}

// OutputDims resolves the output extents: (in-kernel)/step + 1 per convolved
// axis (floor division) and the input extent verbatim on the pass-through
// axis. It is a pure function of the validated inputs.
func (v Validated) OutputDims() Dims {
	out := Dims{1, 1, 1, 1}
	for i := 0; i < MaxConvolvedAxes; i++ {
		out[i] = (v.in[i]-v.kernel[i])/v.steps[i] + 1
	}
	out[MaxRank-1] = v.in[MaxRank-1]
	return out
}

// InputDims returns the normalized input dims.
func (v Validated) InputDims() Dims {
	return Dims{v.in[0], v.in[1], v.in[2], v.in[3]}
}

// KernelDims returns the normalized kernel dims.
func (v Validated) KernelDims() Dims {
	return Dims{v.kernel[0], v.kernel[1], v.kernel[2], v.kernel[3]}
}

// Steps returns the per-axis down-sampling steps.
func (v Validated) Steps() Steps {
	return Steps{v.steps[0], v.steps[1], v.steps[2]}
}
