package pointop

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ndfilter/internal/testutil"
)

func TestApplyIdentityTable(t *testing.T) {
	// LUT entry i holds value i over domain [0, 3]: the identity mapping.
	table := Table{LUT: []float64{0, 1, 2, 3}, Origin: 0, Increment: 1}
	src := []float64{0, 0.5, 1, 2.25, 3}

	dst, ex, err := table.Apply(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Low != 0 {
		t.Errorf("Low = %d, want 0", ex.Low)
	}
	testutil.RequireSliceNearlyEqual(t, dst, src, 1e-12)
}

func TestApplyInterpolates(t *testing.T) {
	table := Table{LUT: []float64{10, 20, 40}, Origin: 1, Increment: 2}

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"first entry", 1, 10},
		{"midpoint of first segment", 2, 15},
		{"second entry", 3, 20},
		{"within second segment", 4, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, ex, err := table.Apply([]float64{tt.in})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ex.Any() {
				t.Errorf("unexpected extrapolation: %+v", ex)
			}
			testutil.RequireSliceNearlyEqual(t, dst, []float64{tt.want}, 1e-12)
		})
	}
}

func TestApplyExtrapolates(t *testing.T) {
	table := Table{LUT: []float64{0, 1, 2}, Origin: 0, Increment: 1}

	// Below the domain: continues the first segment's slope.
	dst, ex, err := table.Apply([]float64{-1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Low != 1 || ex.High != 0 {
		t.Errorf("extrapolation = %+v, want Low=1", ex)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{-1}, 1e-12)

	// Above the domain: continues the last segment's slope.
	dst, ex, err = table.Apply([]float64{3.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.High != 1 || ex.Low != 0 {
		t.Errorf("extrapolation = %+v, want High=1", ex)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{3.5}, 1e-12)

	if !ex.Any() {
		t.Error("Any() should report extrapolation")
	}
}

func TestApplyToInPlace(t *testing.T) {
	table := Table{LUT: []float64{0, 2, 4}, Origin: 0, Increment: 1}
	buf := []float64{0, 0.5, 1, 1.5, 2}

	ex, err := table.ApplyTo(buf, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Any() {
		t.Errorf("unexpected extrapolation: %+v", ex)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0, 1, 2, 3, 4}, 1e-12)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		src   []float64
		want  error
	}{
		{"empty input", Table{LUT: []float64{0, 1}, Increment: 1}, nil, ErrEmptyInput},
		{"single-entry table", Table{LUT: []float64{1}, Increment: 1}, []float64{0}, ErrTableTooSmall},
		{"zero increment", Table{LUT: []float64{0, 1}, Increment: 0}, []float64{0}, ErrInvalidIncrement},
		{"negative increment", Table{LUT: []float64{0, 1}, Increment: -1}, []float64{0}, ErrInvalidIncrement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.table.Apply(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("Apply() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyToLengthMismatch(t *testing.T) {
	table := Table{LUT: []float64{0, 1}, Increment: 1}
	dst := []float64{7, 7}

	_, err := table.ApplyTo(dst, []float64{0, 0, 0})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{7, 7}, 0)
}
