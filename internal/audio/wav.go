package audio

import (
	"fmt"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	applog "specviz/internal/log"
)

// LoadWAV decodes a WAV file into a mono Track. Multi-channel input is
// mixed down by averaging channels; integer PCM is scaled to [-1, 1]
// by the source bit depth.
func LoadWAV(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("'%s' is not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV PCM data: %w", err)
	}
	if buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("WAV file reports %d channels", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("WAV file reports sample rate %d", buf.Format.SampleRate)
	}

	scale := float64(int64(1) << (dec.BitDepth - 1))
	if scale <= 0 {
		scale = 1 << 15
	}

	track := &Track{
		Samples:    monoSamples(buf, scale),
		SampleRate: buf.Format.SampleRate,
	}
	applog.Infof("Audio: Loaded '%s' (%d ch to mono, %d Hz, %.2fs)",
		path, buf.Format.NumChannels, track.SampleRate, track.Duration())
	return track, nil
}

// monoSamples mixes an interleaved integer PCM buffer down to mono
// float64 by averaging channels per frame and dividing by scale.
func monoSamples(buf *gaudio.IntBuffer, scale float64) []float64 {
	channels := buf.Format.NumChannels
	numFrames := len(buf.Data) / channels
	samples := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = sum / float64(channels) / scale
	}
	return samples
}
