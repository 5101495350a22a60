// SPDX-License-Identifier: MIT
package viz

import (
	"fmt"
	"image"

	"specviz/internal/analysis"
	"specviz/internal/audio"
	"specviz/internal/feature"
	"specviz/internal/transport"
)

// Options configure a rendering run.
type Options struct {
	Width     int
	Height    int
	FrameRate float64

	// Feature drives per-frame modulation of FeatureParam when set.
	Feature      feature.Source
	FeatureParam string
	FeatureMode  Mode
	Strength     float64

	// Progress, when non-nil, receives one transport.Progress event
	// per rendered frame.
	Progress transport.Transport
}

// Driver renders an image sequence from a track by slicing it into
// frame-rate aligned windows and feeding each window through a
// visualizer.
type Driver struct {
	track *audio.Track
	vis   Visualizer
	opts  Options
}

// NewDriver validates the options and returns a Driver.
func NewDriver(track *audio.Track, vis Visualizer, opts Options) (*Driver, error) {
	if track == nil {
		return nil, fmt.Errorf("driver: track is nil")
	}
	if vis == nil {
		return nil, fmt.Errorf("driver: visualizer is nil")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("driver: invalid frame dimensions %dx%d", opts.Width, opts.Height)
	}
	if opts.FrameRate <= 0 {
		return nil, fmt.Errorf("driver: frame rate must be positive, got %v", opts.FrameRate)
	}
	return &Driver{track: track, vis: vis, opts: opts}, nil
}

// NumFrames reports how many frames the run will produce.
func (d *Driver) NumFrames() int {
	return d.track.NumFrames(d.opts.FrameRate)
}

// Render runs the full sequence. Analysis state is threaded through
// the loop so smoothing carries across frames. Modulation sits between
// analysis and drawing: frame i draws with the modulated parameters,
// but analysis-affecting parameters (transform size, smoothing, counts)
// only take effect from frame i+1's analysis. It also accumulates:
// each frame modulates the value the previous one left behind.
func (d *Driver) Render() ([]*image.RGBA, error) {
	numFrames := d.track.NumFrames(d.opts.FrameRate)
	if numFrames <= 0 {
		return nil, fmt.Errorf("driver: track too short for frame rate %v", d.opts.FrameRate)
	}
	frameDur := d.track.FrameDuration(d.opts.FrameRate, numFrames)

	modulating := d.opts.Feature != nil &&
		d.opts.FeatureParam != "" && d.opts.FeatureParam != "none"

	frames := make([]*image.RGBA, 0, numFrames)
	var state *analysis.State

	for i := 0; i < numFrames; i++ {
		window := d.track.Frame(i, frameDur)

		var err error
		state, err = d.vis.Analyze(state, window, float64(d.track.SampleRate))
		if err != nil {
			return nil, fmt.Errorf("driver: frame %d: %w", i, err)
		}

		if modulating {
			d.vis.Modulate(d.opts.FeatureParam, d.opts.Feature.ValueAt(i), d.opts.Strength, d.opts.FeatureMode)
		}

		frames = append(frames, d.vis.Draw(state, d.opts.Width, d.opts.Height))

		if d.opts.Progress != nil {
			tick := transport.Progress{
				Frame:      i + 1,
				Total:      numFrames,
				Feature:    state.Mean(),
				Visualizer: d.vis.Name(),
			}
			if err := d.opts.Progress.Send(tick); err != nil {
				return nil, fmt.Errorf("driver: progress send failed at frame %d: %w", i, err)
			}
		}
	}

	return frames, nil
}
