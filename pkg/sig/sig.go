// Package sig generates test and demo signals: pure tones, harmonic
// stacks and silence, as mono float64 sample buffers.
package sig

import "math"

// Sine returns n samples of a pure tone at the given frequency,
// amplitude 0.9 to stay clear of clipping.
func Sine(n int, sampleRate, frequency float64) []float64 {
	buffer := make([]float64, n)
	for i := range buffer {
		t := float64(i) / sampleRate
		buffer[i] = math.Sin(2*math.Pi*frequency*t) * 0.9
	}
	return buffer
}

// Harmonics returns n samples of a 440Hz fundamental with two harmonics,
// a spectrally busy fixture for analysis tests.
func Harmonics(n int, sampleRate float64) []float64 {
	buffer := make([]float64, n)
	for i := range buffer {
		t := float64(i) / sampleRate
		buffer[i] = math.Sin(2*math.Pi*440*t)*0.5 +
			math.Sin(2*math.Pi*880*t)*0.3 +
			math.Sin(2*math.Pi*1320*t)*0.2
	}
	return buffer
}

// Silence returns n zero samples.
func Silence(n int) []float64 {
	return make([]float64, n)
}

// FindPeak returns the index of the largest value in v within
// [start, end], clamped to the slice bounds.
func FindPeak(v []float64, start, end int) int {
	if len(v) == 0 {
		return 0
	}
	if start < 0 {
		start = 0
	}
	if end >= len(v) {
		end = len(v) - 1
	}

	peak := start
	for i := start + 1; i <= end; i++ {
		if v[i] > v[peak] {
			peak = i
		}
	}
	return peak
}
