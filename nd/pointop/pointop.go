// Package pointop maps every element of a buffer through a lookup table with
// linear interpolation between adjacent entries.
//
// A Table covers the value range [Origin, Origin+Increment*(len(LUT)-1)].
// For each input element, the position (v - Origin) / Increment selects a
// pair of adjacent table entries and the result interpolates linearly between
// them. Values outside the covered range extrapolate linearly along the
// nearest boundary segment; the number of extrapolated elements is reported
// back to the caller instead of being logged.
package pointop

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned when constructing or applying a Table.
var (
	ErrEmptyInput       = errors.New("pointop: empty input")
	ErrTableTooSmall    = errors.New("pointop: lookup table needs at least 2 entries")
	ErrInvalidIncrement = errors.New("pointop: increment must be positive")
	ErrLengthMismatch   = errors.New("pointop: buffer length mismatch")
)

// Table is a lookup table with a linear domain mapping. LUT entry i sits at
// input value Origin + Increment*i.
type Table struct {
	LUT       []float64
	Origin    float64
	Increment float64
}

// Extrapolation counts input elements that fell outside the table's domain
// and were extrapolated along the first or last table segment.
type Extrapolation struct {
	Low  int // extrapolated along the leftmost segment
	High int // extrapolated along the rightmost segment
}

// Any reports whether any element was extrapolated.
func (e Extrapolation) Any() bool {
	return e.Low > 0 || e.High > 0
}

func (t Table) check() error {
	if len(t.LUT) < 2 {
		return fmt.Errorf("%w: got %d", ErrTableTooSmall, len(t.LUT))
	}
	if t.Increment <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidIncrement, t.Increment)
	}
	return nil
}

// Apply maps src through the table into a new slice.
func (t Table) Apply(src []float64) ([]float64, Extrapolation, error) {
	if len(src) == 0 {
		return nil, Extrapolation{}, ErrEmptyInput
	}
	if err := t.check(); err != nil {
		return nil, Extrapolation{}, err
	}

	dst := make([]float64, len(src))
	ex := t.apply(dst, src)
	return dst, ex, nil
}

// ApplyTo maps src through the table into a pre-allocated destination of the
// same length. dst is not touched when any check fails. dst and src may be
// the same slice for an in-place point operation.
func (t Table) ApplyTo(dst, src []float64) (Extrapolation, error) {
	if len(dst) != len(src) {
		return Extrapolation{}, fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	if err := t.check(); err != nil {
		return Extrapolation{}, err
	}

	return t.apply(dst, src), nil
}

func (t Table) apply(dst, src []float64) Extrapolation {
	var ex Extrapolation

	// Highest segment start such that index+1 is still a valid entry.
	maxIndex := len(t.LUT) - 2

	for i, v := range src {
		pos := (v - t.Origin) / t.Increment
		index := int(math.Floor(pos))

		switch {
		case index < 0:
			index = 0
			ex.Low++
		case index > maxIndex:
			index = maxIndex
			ex.High++
		}

		frac := pos - float64(index)
		dst[i] = t.LUT[index] + (t.LUT[index+1]-t.LUT[index])*frac
	}

	return ex
}
