// Package audio holds the immutable input track and the per-frame
// sample window arithmetic the visualizers render from.
package audio

// Track is a mono audio signal. Samples are float64 in [-1, 1]; the
// pipeline treats it as read-only.
type Track struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the track length in seconds.
func (t *Track) Duration() float64 {
	if t.SampleRate <= 0 {
		return 0
	}
	return float64(len(t.Samples)) / float64(t.SampleRate)
}

// NumFrames returns how many frames a render at the given frame rate
// produces: floor(duration * frameRate).
func (t *Track) NumFrames(frameRate float64) int {
	if frameRate <= 0 {
		return 0
	}
	return int(t.Duration() * frameRate)
}

// FrameDuration returns the length of one frame window in seconds:
// 1/frameRate when the rate is positive, otherwise the full duration
// split evenly across numFrames.
func (t *Track) FrameDuration(frameRate float64, numFrames int) float64 {
	if frameRate > 0 {
		return 1 / frameRate
	}
	if numFrames <= 0 {
		return 0
	}
	return t.Duration() / float64(numFrames)
}

// Frame returns the sample window for frame index i, covering
// [i*frameDur, (i+1)*frameDur) seconds. Out-of-range indices are not an
// error; the result is simply empty or truncated at the track bounds.
func (t *Track) Frame(i int, frameDur float64) []float64 {
	sr := float64(t.SampleRate)
	start := int(float64(i) * frameDur * sr)
	end := int(float64(i+1) * frameDur * sr)

	if start < 0 {
		start = 0
	}
	if end > len(t.Samples) {
		end = len(t.Samples)
	}
	if start >= end {
		return nil
	}
	return t.Samples[start:end]
}
