// Package array provides an optional N-dimensional view over a flat
// column-major float64 slice, plus a pool for scratch arrays. The shape,
// corrdn, block, and pointop packages all accept raw []float64 slices; Array
// is a convenience for callers that want coordinate access and shape
// bookkeeping in one place.
package array

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndfilter/nd/corrdn"
	"github.com/cwbudde/algo-ndfilter/nd/shape"
)

// ErrDataLength is returned when a slice does not match its claimed dims.
var ErrDataLength = errors.New("array: data length does not match dims")

// Array couples a flat column-major buffer with its dims. The zero value is
// an empty array.
type Array struct {
	data []float64
	dims shape.Dims
}

// New returns a zero-filled Array with the given dims.
func New(dims shape.Dims) *Array {
	d := append(shape.Dims(nil), dims...)
	return &Array{
		data: make([]float64, d.NumElements()),
		dims: d,
	}
}

// FromSlice wraps an existing slice without copying. Mutations to the slice
// are visible through the Array and vice versa.
func FromSlice(data []float64, dims shape.Dims) (*Array, error) {
	if len(data) != dims.NumElements() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDataLength, len(data), dims.NumElements())
	}
	return &Array{data: data, dims: append(shape.Dims(nil), dims...)}, nil
}

// Data returns the underlying flat slice.
func (a *Array) Data() []float64 {
	return a.data
}

// Dims returns a copy of the array's dims.
func (a *Array) Dims() shape.Dims {
	return append(shape.Dims(nil), a.dims...)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// At returns the element at the given axis coordinates.
func (a *Array) At(coord ...int) float64 {
	return a.data[a.dims.LinearIndex(coord...)]
}

// Set stores value at the given axis coordinates.
func (a *Array) Set(value float64, coord ...int) {
	a.data[a.dims.LinearIndex(coord...)] = value
}

// Fill sets every element to value.
func (a *Array) Fill(value float64) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Zero sets every element to 0.
func (a *Array) Zero() {
	a.Fill(0)
}

// resize repoints the array at dims, reusing existing capacity when the
// element count allows it. Contents are unspecified afterwards.
func (a *Array) resize(dims shape.Dims) {
	n := dims.NumElements()
	if n <= cap(a.data) {
		a.data = a.data[:n]
	} else {
		a.data = make([]float64, n)
	}
	a.dims = append(a.dims[:0], dims...)
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{data: data, dims: append(shape.Dims(nil), a.dims...)}
}

// CorrDn correlates the array with kernel at every fully-overlapping window,
// down-sampling by steps, and returns the result as a new Array.
func (a *Array) CorrDn(kernel *Array, steps shape.Steps) (*Array, error) {
	out, outDims, err := corrdn.CorrDn(a.data, kernel.data, a.dims, kernel.dims, steps)
	if err != nil {
		return nil, err
	}
	return &Array{data: out, dims: outDims}, nil
}
