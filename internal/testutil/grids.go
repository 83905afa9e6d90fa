package testutil

import "math/rand"

// Ramp returns n values 0, 1, 2, ... for easy index bookkeeping in tests.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Checker returns n values alternating +1, -1. Useful as a kernel whose taps
// cancel unless the sweep visits them in the intended order.
func Checker(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// Constant returns n copies of value.
func Constant(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse returns n zeros with a single 1 at pos. Out-of-range positions
// yield all zeros.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Noise returns n uniform values in [-amplitude, amplitude) from a fixed
// seed for reproducibility.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
