// SPDX-License-Identifier: MIT
//
// Package analysis turns raw per-frame sample windows into normalized
// magnitude spectra and carries the exponentially smoothed spectrum
// state between frames.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Pre-allocated buffers for the transform. Reused across frames so the
// per-frame path stays allocation-free apart from the returned vector.
type workspace struct {
	input      []float64    // Windowed, zero-padded input signal.
	coeffs     []complex128 // FFT complex output.
	magnitude  []float64    // One-sided magnitude spectrum.
	window     []float64    // Pre-calculated window coefficients.
	longWindow []float64    // Window sized to the last over-long frame.
}

// Extractor computes normalized magnitude spectra from sample windows.
// An Extractor is bound to one transform size, sample rate and window
// function; visualizers rebuild it when a size parameter changes.
type Extractor struct {
	fft        *fourier.FFT
	size       int
	sampleRate float64
	windowType WindowFunc
	workspace  workspace
}

// NewExtractor creates an extractor for the given transform size. The
// window coefficients are computed once up front.
func NewExtractor(size int, sampleRate float64, windowType WindowFunc) (*Extractor, error) {
	if size < 2 {
		return nil, fmt.Errorf("transform size must be at least 2, got %d", size)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %f", sampleRate)
	}

	windowCoeffs := make([]float64, size)
	applyWindow(windowCoeffs, windowType)

	// One-sided output of a real transform is N/2 + 1 bins.
	bins := size/2 + 1

	return &Extractor{
		fft:        fourier.NewFFT(size),
		size:       size,
		sampleRate: sampleRate,
		windowType: windowType,
		workspace: workspace{
			input:     make([]float64, size),
			coeffs:    make([]complex128, bins),
			magnitude: make([]float64, bins),
			window:    windowCoeffs,
		},
	}, nil
}

// Size returns the transform size the extractor was built with.
func (e *Extractor) Size() int { return e.size }

// SampleRate returns the sample rate in Hz.
func (e *Extractor) SampleRate() float64 { return e.sampleRate }

// BinFrequency returns the center frequency (Hz) for a one-sided bin index.
func (e *Extractor) BinFrequency(i int) float64 {
	if i < 0 || i >= len(e.workspace.coeffs) {
		return 0
	}
	return e.fft.Freq(i) * e.sampleRate
}

// magnitudes runs the transform over frame and fills the magnitude
// buffer. Frames shorter than the transform size are zero-padded.
// Longer frames are windowed at their full length and then truncated,
// so the transform sees the leading portion of the full-frame window
// rather than a window compressed to the transform size. The returned
// slice is owned by the workspace.
func (e *Extractor) magnitudes(frame []float64) []float64 {
	window := e.workspace.window
	if len(frame) > e.size {
		window = e.frameWindow(len(frame))
	}
	for i := range e.size {
		if i < len(frame) {
			e.workspace.input[i] = frame[i] * window[i]
		} else {
			e.workspace.input[i] = 0
		}
	}

	e.fft.Coefficients(e.workspace.coeffs, e.workspace.input)
	for i, c := range e.workspace.coeffs {
		e.workspace.magnitude[i] = cmplx.Abs(c)
	}
	return e.workspace.magnitude
}

// frameWindow returns window coefficients for frames longer than the
// transform size, cached until the frame length changes.
func (e *Extractor) frameWindow(n int) []float64 {
	if len(e.workspace.longWindow) != n {
		e.workspace.longWindow = make([]float64, n)
		applyWindow(e.workspace.longWindow, e.windowType)
	}
	return e.workspace.longWindow
}

// Bands returns the first n spectrum magnitudes, log-compressed and
// max-normalized. The full one-sided spectrum (Nyquist bin included)
// sets the normalization scale before the slice is taken, so energy in
// the excluded top bins keeps the visible bars proportional. This is
// the raw-magnitude bar path: no windowing, no frequency selection;
// callers size the extractor at 2n. An empty frame yields n zeros
// without invoking the transform.
func (e *Extractor) Bands(frame []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(frame) == 0 {
		return out
	}

	mags := e.magnitudes(frame)
	LogCompress(mags)
	Normalize(mags)
	for i := range out {
		if i < len(mags) {
			out[i] = mags[i]
		}
	}
	return out
}

// BandRange returns the normalized spectrum restricted to the bins whose
// center frequency lies in [minHz, maxHz] inclusive, resampled to points
// values when points > 0 (otherwise the native bin count is kept).
// Degenerate ranges and empty frames yield zero vectors of the target
// length without invoking the transform.
func (e *Extractor) BandRange(frame []float64, minHz, maxHz float64, points int) []float64 {
	lo, hi := -1, -1
	for i := range e.workspace.coeffs {
		f := e.BinFrequency(i)
		if f >= minHz && f <= maxHz {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}

	if lo < 0 { // no bins selected
		if points > 0 {
			return make([]float64, points)
		}
		return nil
	}

	count := hi - lo + 1
	if len(frame) == 0 {
		target := count
		if points > 0 {
			target = points
		}
		return make([]float64, target)
	}

	mags := e.magnitudes(frame)
	out := make([]float64, count)
	copy(out, mags[lo:hi+1])

	LogCompress(out)
	Normalize(out)

	if points > 0 && points != len(out) {
		out = Resample(out, points)
	}
	return out
}

// LogCompress applies log(1+x) compression in place.
func LogCompress(v []float64) {
	for i, x := range v {
		v[i] = math.Log1p(x)
	}
}

// Normalize divides v by its maximum value in place so the peak becomes
// 1. An all-zero vector is left untouched; there is no division by zero.
func Normalize(v []float64) {
	var max float64
	for _, x := range v {
		if x > max {
			max = x
		}
	}
	if max == 0 {
		return
	}
	for i := range v {
		v[i] /= max
	}
}

// Resample linearly interpolates values to exactly n points. Sample
// positions run i*len/n for i in [0, n); positions past the last index
// clamp to the final value. Resampling to the same length copies.
func Resample(values []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(values) == 0 {
		return out
	}
	for i := range out {
		pos := float64(i) * float64(len(values)) / float64(n)
		j := int(pos)
		if j >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = values[j]*(1-frac) + values[j+1]*frac
	}
	return out
}
