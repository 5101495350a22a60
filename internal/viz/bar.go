package viz

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"

	"specviz/internal/analysis"
)

// BarConfig holds the bar visualizer's render parameters. NumBars is a
// float so modulation can move it continuously; it is rounded at use.
type BarConfig struct {
	Curvature  float64
	Separation float64
	MaxHeight  float64
	MinHeight  float64
	NumBars    float64
	Smoothing  float64
	Rotation   float64
	PositionY  float64
	Reflect    bool
}

// DefaultBarConfig returns the declared parameter defaults.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Separation: 5,
		MaxHeight:  200,
		MinHeight:  10,
		NumBars:    64,
		Smoothing:  0.5,
		PositionY:  0.5,
	}
}

// Bar renders the spectrum as vertical bars around a baseline. The raw
// magnitude spectrum is used without a window function; the transform
// size tracks the bar count at 2*numBars.
type Bar struct {
	cfg BarConfig
	ext *analysis.Extractor
}

// NewBar creates the bar visualizer, clamping parameters into their
// declared ranges.
func NewBar(cfg BarConfig) *Bar {
	cfg.Curvature = clampParam(barParams, "curvature", cfg.Curvature)
	cfg.Separation = clampParam(barParams, "separation", cfg.Separation)
	cfg.MaxHeight = clampParam(barParams, "max_height", cfg.MaxHeight)
	cfg.MinHeight = clampParam(barParams, "min_height", cfg.MinHeight)
	cfg.NumBars = clampParam(barParams, "num_bars", cfg.NumBars)
	cfg.Smoothing = clampParam(barParams, "smoothing", cfg.Smoothing)
	cfg.Rotation = clampParam(barParams, "rotation", cfg.Rotation)
	cfg.PositionY = clampParam(barParams, "position_y", cfg.PositionY)
	return &Bar{cfg: cfg}
}

// Name implements Visualizer.
func (b *Bar) Name() string { return "bar" }

// ModifiableParams implements Visualizer.
func (b *Bar) ModifiableParams() []string {
	return []string{"curvature", "separation", "max_height", "min_height",
		"num_bars", "smoothing", "rotation", "position_y", "reflect"}
}

// Modulate implements Visualizer.
func (b *Bar) Modulate(param string, featureValue, strength float64, mode Mode) {
	switch param {
	case "curvature":
		b.cfg.Curvature = Modulate(b.cfg.Curvature, featureValue, strength, mode)
	case "separation":
		b.cfg.Separation = Modulate(b.cfg.Separation, featureValue, strength, mode)
	case "max_height":
		b.cfg.MaxHeight = Modulate(b.cfg.MaxHeight, featureValue, strength, mode)
	case "min_height":
		b.cfg.MinHeight = Modulate(b.cfg.MinHeight, featureValue, strength, mode)
	case "num_bars":
		b.cfg.NumBars = Modulate(b.cfg.NumBars, featureValue, strength, mode)
	case "smoothing":
		b.cfg.Smoothing = Modulate(b.cfg.Smoothing, featureValue, strength, mode)
	case "rotation":
		b.cfg.Rotation = Modulate(b.cfg.Rotation, featureValue, strength, mode)
	case "position_y":
		b.cfg.PositionY = Modulate(b.cfg.PositionY, featureValue, strength, mode)
	case "reflect":
		b.cfg.Reflect = modulateBool(b.cfg.Reflect, featureValue, strength, mode)
	}
}

func (b *Bar) barCount() int {
	n := int(math.Round(b.cfg.NumBars))
	if n < 1 {
		n = 1
	}
	return n
}

// Analyze implements Visualizer. The extractor is rebuilt whenever the
// bar count (and with it the transform size) changes mid-sequence.
func (b *Bar) Analyze(state *analysis.State, frame []float64, sampleRate float64) (*analysis.State, error) {
	n := b.barCount()
	if b.ext == nil || b.ext.Size() != 2*n || b.ext.SampleRate() != sampleRate {
		ext, err := analysis.NewExtractor(2*n, sampleRate, analysis.Rectangular)
		if err != nil {
			return state, err
		}
		b.ext = ext
	}
	data := b.ext.Bands(frame, n)
	return analysis.Blend(state, data, clamp01(b.cfg.Smoothing)), nil
}

// Draw implements Visualizer.
func (b *Bar) Draw(state *analysis.State, width, height int) *image.RGBA {
	n := b.barCount()
	values := state.Values
	if len(values) != n {
		values = analysis.Resample(values, n)
	}

	c, ctx := newScene(width, height)
	applyRotation(ctx, b.cfg.Rotation, width, height)

	w, h := float64(width), float64(height)
	sep := b.cfg.Separation
	barW := (w - sep*float64(n-1)) / float64(n)
	// Baseline measured from the top of the image; canvas y runs upward.
	baseY := h - h*b.cfg.PositionY

	ctx.SetFillColor(color.White)
	for i, v := range values {
		x := float64(i) * (barW + sep)
		barH := b.cfg.MinHeight + (b.cfg.MaxHeight-b.cfg.MinHeight)*v

		y0, y1 := baseY, baseY+barH
		if b.cfg.Reflect {
			y0 = baseY - barH
		}
		if y0 < 0 {
			y0 = 0
		}
		if y1 > h {
			y1 = h
		}
		rectH := y1 - y0
		if rectH <= 0 || barW <= 0 {
			continue
		}

		radius := math.Min(b.cfg.Curvature, math.Min(barW/2, rectH/2))
		if radius > 0 {
			ctx.DrawPath(x, y0, canvas.RoundedRectangle(barW, rectH, radius))
		} else {
			ctx.DrawPath(x, y0, canvas.Rectangle(barW, rectH))
		}
	}

	return rasterize(c, width, height)
}
