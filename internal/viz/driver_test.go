package viz

import (
	"image"
	"testing"

	"specviz/internal/analysis"
	"specviz/internal/audio"
	"specviz/internal/feature"
	"specviz/internal/transport"
)

// captureTransport records every progress event it receives.
type captureTransport struct {
	events []transport.Progress
}

func (c *captureTransport) Send(data any) error {
	c.events = append(c.events, data.(transport.Progress))
	return nil
}

func (c *captureTransport) Close() error { return nil }

// stubVisualizer records calls so driver sequencing can be asserted
// without rendering anything.
type stubVisualizer struct {
	analyzed  int
	drawn     int
	modulated []float64
	calls     []string
}

func (s *stubVisualizer) Name() string               { return "stub" }
func (s *stubVisualizer) ModifiableParams() []string { return []string{"gain"} }

func (s *stubVisualizer) Modulate(param string, featureValue, strength float64, mode Mode) {
	s.modulated = append(s.modulated, featureValue)
	s.calls = append(s.calls, "modulate")
}
func (s *stubVisualizer) Analyze(state *analysis.State, frame []float64, sampleRate float64) (*analysis.State, error) {
	s.analyzed++
	s.calls = append(s.calls, "analyze")
	return analysis.Blend(state, []float64{0.25, 0.75}, 0), nil
}
func (s *stubVisualizer) Draw(state *analysis.State, width, height int) *image.RGBA {
	s.drawn++
	s.calls = append(s.calls, "draw")
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func silentTrack(seconds float64, sampleRate int) *audio.Track {
	return &audio.Track{
		Samples:    make([]float64, int(seconds*float64(sampleRate))),
		SampleRate: sampleRate,
	}
}

func TestDriverFrameCountAndTicks(t *testing.T) {
	track := silentTrack(1.0, 44100)
	vis := &stubVisualizer{}
	sink := &captureTransport{}

	d, err := NewDriver(track, vis, Options{
		Width: 64, Height: 48, FrameRate: 10,
		Progress: sink,
	})
	if err != nil {
		t.Fatalf("NewDriver() error: %v", err)
	}
	if got := d.NumFrames(); got != 10 {
		t.Fatalf("NumFrames() = %d, want 10", got)
	}

	frames, err := d.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("got %d frames, want 10", len(frames))
	}
	if vis.analyzed != 10 || vis.drawn != 10 {
		t.Errorf("analyze/draw calls = %d/%d, want 10/10", vis.analyzed, vis.drawn)
	}
	if len(vis.modulated) != 0 {
		t.Errorf("no feature source configured, but Modulate was called %d times", len(vis.modulated))
	}

	if len(sink.events) != 10 {
		t.Fatalf("got %d progress ticks, want 10", len(sink.events))
	}
	for i, ev := range sink.events {
		if ev.Frame != i+1 || ev.Total != 10 {
			t.Errorf("tick %d = %d/%d, want %d/10", i, ev.Frame, ev.Total, i+1)
		}
		if ev.Visualizer != "stub" {
			t.Errorf("tick %d visualizer = %q", i, ev.Visualizer)
		}
		if ev.Feature != 0.5 {
			t.Errorf("tick %d feature = %v, want 0.5", i, ev.Feature)
		}
	}
}

func TestDriverModulatesEachFrame(t *testing.T) {
	track := silentTrack(0.5, 44100)
	vis := &stubVisualizer{}

	d, err := NewDriver(track, vis, Options{
		Width: 32, Height: 32, FrameRate: 10,
		Feature:      feature.Constant(0.8),
		FeatureParam: "gain",
		Strength:     1.0,
	})
	if err != nil {
		t.Fatalf("NewDriver() error: %v", err)
	}
	if _, err := d.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(vis.modulated) != 5 {
		t.Fatalf("Modulate calls = %d, want 5", len(vis.modulated))
	}
	for _, v := range vis.modulated {
		if v != 0.8 {
			t.Errorf("modulated with feature %v, want 0.8", v)
		}
	}
}

// Modulation sits between analysis and drawing, so a parameter that
// changes the analysis only takes effect on the following frame.
func TestDriverAnalyzesBeforeModulating(t *testing.T) {
	track := silentTrack(0.3, 44100)
	vis := &stubVisualizer{}

	d, err := NewDriver(track, vis, Options{
		Width: 32, Height: 32, FrameRate: 10,
		Feature:      feature.Constant(0.8),
		FeatureParam: "gain",
		Strength:     1.0,
	})
	if err != nil {
		t.Fatalf("NewDriver() error: %v", err)
	}
	if _, err := d.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if len(vis.calls) != 9 {
		t.Fatalf("got %d calls, want 9 (3 frames of analyze/modulate/draw)", len(vis.calls))
	}
	for f := 0; f < 3; f++ {
		frame := vis.calls[f*3 : f*3+3]
		if frame[0] != "analyze" || frame[1] != "modulate" || frame[2] != "draw" {
			t.Errorf("frame %d call order = %v, want [analyze modulate draw]", f, frame)
		}
	}
}

func TestDriverParamNoneDisablesModulation(t *testing.T) {
	track := silentTrack(0.3, 44100)
	vis := &stubVisualizer{}

	d, err := NewDriver(track, vis, Options{
		Width: 32, Height: 32, FrameRate: 10,
		Feature:      feature.Constant(1.0),
		FeatureParam: "none",
		Strength:     1.0,
	})
	if err != nil {
		t.Fatalf("NewDriver() error: %v", err)
	}
	if _, err := d.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(vis.modulated) != 0 {
		t.Errorf("param 'none' should disable modulation, got %d calls", len(vis.modulated))
	}
}

func TestDriverRejectsBadOptions(t *testing.T) {
	track := silentTrack(1.0, 44100)
	vis := &stubVisualizer{}

	if _, err := NewDriver(nil, vis, Options{Width: 10, Height: 10, FrameRate: 10}); err == nil {
		t.Error("expected error for nil track")
	}
	if _, err := NewDriver(track, nil, Options{Width: 10, Height: 10, FrameRate: 10}); err == nil {
		t.Error("expected error for nil visualizer")
	}
	if _, err := NewDriver(track, vis, Options{Width: 0, Height: 10, FrameRate: 10}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewDriver(track, vis, Options{Width: 10, Height: 10, FrameRate: 0}); err == nil {
		t.Error("expected error for zero frame rate")
	}
}

func TestDriverShortTrackFails(t *testing.T) {
	track := silentTrack(0.01, 44100) // under one frame at 10 fps
	d, err := NewDriver(track, &stubVisualizer{}, Options{Width: 10, Height: 10, FrameRate: 10})
	if err != nil {
		t.Fatalf("NewDriver() error: %v", err)
	}
	if _, err := d.Render(); err == nil {
		t.Error("expected error for track shorter than one frame")
	}
}

// End to end: a second of silence through the bar visualizer must
// produce frames of the requested size where only the background is
// painted.
func TestDriverSilenceRendersBlackBars(t *testing.T) {
	track := silentTrack(1.0, 44100)
	cfg := DefaultBarConfig()
	cfg.NumBars = 8
	cfg.MinHeight = 0 // silence maps to zero-height bars

	d, err := NewDriver(track, NewBar(cfg), Options{Width: 64, Height: 48, FrameRate: 10})
	if err != nil {
		t.Fatalf("NewDriver() error: %v", err)
	}
	frames, err := d.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("got %d frames, want 10", len(frames))
	}
	for i, img := range frames {
		b := img.Bounds()
		if b.Dx() != 64 || b.Dy() != 48 {
			t.Fatalf("frame %d is %dx%d, want 64x48", i, b.Dx(), b.Dy())
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				if r != 0 || g != 0 || bl != 0 {
					t.Fatalf("frame %d pixel (%d,%d) is not black", i, x, y)
				}
			}
		}
	}
}
