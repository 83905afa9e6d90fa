// Package block provides single-pass scalar utilities over flat float64
// buffers: min/max reduction, in-place squaring, and bounds-checked
// overwrite. These are the simple collaborators around the correlation
// engine; they carry no shape information and treat every buffer as flat.
//
// In-place operations assume exactly one writer and no concurrent reader for
// the duration of the call.
package block

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by block utilities.
var (
	ErrEmptyInput  = errors.New("block: empty input")
	ErrOutOfBounds = errors.New("block: write exceeds destination bounds")
)

// Range returns the minimum and maximum value in buf in a single pass.
func Range(buf []float64) (min, max float64, err error) {
	if len(buf) == 0 {
		return 0, 0, ErrEmptyInput
	}

	min, max = buf[0], buf[0]
	for _, v := range buf[1:] {
		if v < min {
			min = v
		} else if v > max {
			max = v
		}
	}
	return min, max, nil
}

// SquareInPlace replaces every element of buf with its square.
func SquareInPlace(buf []float64) {
	vecmath.MulBlockInPlace(buf, buf)
}

// Overwrite copies src into dst starting at start, overwriting
// dst[start : start+len(src)]. dst is left untouched when the write would
// exceed its bounds.
func Overwrite(dst, src []float64, start int) error {
	if start < 0 || start+len(src) > len(dst) {
		return fmt.Errorf("%w: start %d, %d values, destination %d", ErrOutOfBounds, start, len(src), len(dst))
	}

	copy(dst[start:start+len(src)], src)
	return nil
}
