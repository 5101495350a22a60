package viz

import (
	"image"
	"math"
	"testing"

	"specviz/internal/analysis"
	"specviz/pkg/sig"
)

func TestBarAnalyzeTracksBarCount(t *testing.T) {
	b := NewBar(DefaultBarConfig())
	frame := sig.Sine(4096, 44100, 440)

	state, err := b.Analyze(nil, frame, 44100)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(state.Values) != 64 {
		t.Fatalf("state length = %d, want 64", len(state.Values))
	}

	// Shrinking the bar count rebuilds the extractor and changes the
	// feature vector length on the next frame.
	b.Modulate("num_bars", 0, 1.0, ModeRelative) // 64 -> 32
	state, err = b.Analyze(state, frame, 44100)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(state.Values) != 32 {
		t.Fatalf("state length after modulation = %d, want 32", len(state.Values))
	}
}

func TestBarDrawResamplesMismatchedState(t *testing.T) {
	cfg := DefaultBarConfig()
	cfg.NumBars = 8
	b := NewBar(cfg)

	// Hand the draw a state from a different bar count; it must not
	// panic and still produce an image of the right size.
	state := &analysis.State{Values: make([]float64, 20)}
	img := b.Draw(state, 40, 30)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("image is %v, want 40x30", img.Bounds())
	}
}

func TestBarDrawsSignalPixels(t *testing.T) {
	cfg := DefaultBarConfig()
	cfg.NumBars = 8
	cfg.MinHeight = 10
	b := NewBar(cfg)

	state, err := b.Analyze(nil, sig.Harmonics(4096, 44100), 44100)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	img := b.Draw(state, 128, 128)
	if !hasNonBlackPixel(img) {
		t.Error("expected at least the min-height bars to be visible")
	}
}

func TestCurveSmoothingWindowIsOdd(t *testing.T) {
	values := make([]float64, 10)
	values[5] = 1

	out := smoothCurve(values, 3)
	if len(out) != len(values) {
		t.Fatalf("smoothed length = %d, want %d", len(out), len(values))
	}
	want := 1.0 / 3.0
	for i, v := range out {
		switch i {
		case 4, 5, 6:
			if math.Abs(v-want) > 1e-12 {
				t.Errorf("out[%d] = %v, want %v", i, v, want)
			}
		default:
			if v != 0 {
				t.Errorf("out[%d] = %v, want 0", i, v)
			}
		}
	}

	// Windows too small to average are a no-op.
	if got := smoothCurve(values, 1); &got[0] != &values[0] {
		t.Error("window < 3 should return the input unchanged")
	}
}

func TestCurveAnalyzeAndDraw(t *testing.T) {
	c := NewCurve(DefaultCurveConfig())
	state, err := c.Analyze(nil, sig.Sine(4096, 44100, 440), 44100)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(state.Values) == 0 {
		t.Fatal("expected a populated feature vector")
	}
	img := c.Draw(state, 128, 64)
	if !hasNonBlackPixel(img) {
		t.Error("expected the curve stroke to reach the raster")
	}
}

func TestCircularAnalyzeResamplesToPointCount(t *testing.T) {
	cfg := DefaultCircularConfig()
	cfg.NumPoints = 32
	c := NewCircular(cfg)

	state, err := c.Analyze(nil, sig.Harmonics(4096, 44100), 44100)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(state.Values) != 32 {
		t.Fatalf("state length = %d, want 32", len(state.Values))
	}
	img := c.Draw(state, 128, 128)
	if img.Bounds().Dx() != 128 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestCircleDeformDrawsClosedShape(t *testing.T) {
	c := NewCircleDeform(DefaultCircleDeformConfig())
	state, err := c.Analyze(nil, sig.Harmonics(4096, 44100), 44100)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	img := c.Draw(state, 256, 256)
	if !hasNonBlackPixel(img) {
		t.Error("expected the deformed circle outline to be visible")
	}
}

func TestRegistryCoversAllVisualizers(t *testing.T) {
	reg := Registry()
	if len(reg) != 4 {
		t.Fatalf("registry has %d entries, want 4", len(reg))
	}
	seen := map[string]bool{}
	for _, d := range reg {
		seen[d.Name] = true
		if len(d.Params) == 0 {
			t.Errorf("visualizer %q declares no parameters", d.Name)
		}
	}
	for _, name := range []string{"bar", "curve", "circular", "circledeform"} {
		if !seen[name] {
			t.Errorf("registry is missing %q", name)
		}
	}
}

func hasNonBlackPixel(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0 || g != 0 || bl != 0 {
				return true
			}
		}
	}
	return false
}
