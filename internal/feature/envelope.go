package feature

import (
	"fmt"
	"math"

	"specviz/internal/analysis"
	"specviz/internal/audio"
	applog "specviz/internal/log"
	"specviz/pkg/bitint"
)

// Band is a named frequency range for band-energy features.
type Band struct {
	Name   string
	LowHz  float64
	HighHz float64
}

// Bands selectable from configuration. Treble's upper bound is clamped
// to Nyquist at extraction time.
var Bands = []Band{
	{Name: "sub", LowHz: 20, HighHz: 60},
	{Name: "bass", LowHz: 60, HighHz: 250},
	{Name: "lowmid", LowHz: 250, HighHz: 500},
	{Name: "mid", LowHz: 500, HighHz: 2000},
	{Name: "highmid", LowHz: 2000, HighHz: 4000},
	{Name: "treble", LowHz: 4000, HighHz: 20000},
}

// BandByName looks up one of the predefined bands.
func BandByName(name string) (Band, error) {
	for _, b := range Bands {
		if b.Name == name {
			return b, nil
		}
	}
	return Band{}, fmt.Errorf("unknown frequency band '%s'", name)
}

// NewRMSEnvelope computes the per-frame RMS amplitude of the track,
// peak-normalized to [0,1].
func NewRMSEnvelope(track *audio.Track, frameDur float64, numFrames int) *Envelope {
	values := make([]float64, numFrames)
	for i := range values {
		window := track.Frame(i, frameDur)
		if len(window) == 0 {
			continue
		}
		var sum float64
		for _, s := range window {
			sum += s * s
		}
		values[i] = math.Sqrt(sum / float64(len(window)))
	}
	normalizePeak(values)
	applog.Debugf("Feature: RMS envelope over %d frames", numFrames)
	return NewEnvelope(values)
}

// NewBandEnergyEnvelope computes per-frame average energy in one
// frequency band from the magnitude spectrum, peak-normalized to [0,1].
// The transform size is the next power of two covering a frame window.
func NewBandEnergyEnvelope(track *audio.Track, frameDur float64, numFrames int, band Band) (*Envelope, error) {
	winSamples := int(frameDur * float64(track.SampleRate))
	size := bitint.NextPowerOfTwo(winSamples)
	if size < 2 {
		size = 2
	}
	ext, err := analysis.NewExtractor(size, float64(track.SampleRate), analysis.Hann)
	if err != nil {
		return nil, fmt.Errorf("band energy extractor: %w", err)
	}

	highHz := band.HighHz
	if nyquist := float64(track.SampleRate) / 2; highHz > nyquist {
		highHz = nyquist
	}

	values := make([]float64, numFrames)
	for i := range values {
		window := track.Frame(i, frameDur)
		mags := ext.BandRange(window, band.LowHz, highHz, 0)
		if len(mags) == 0 {
			continue
		}
		var energy float64
		for _, m := range mags {
			energy += m * m
		}
		values[i] = math.Sqrt(energy / float64(len(mags)))
	}
	normalizePeak(values)
	applog.Debugf("Feature: %s band energy over %d frames (transform %d)", band.Name, numFrames, size)
	return NewEnvelope(values), nil
}
