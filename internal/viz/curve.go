package viz

import (
	"image"
	"math"

	"github.com/tdewolff/canvas"

	"specviz/internal/analysis"
)

// CurveConfig holds the frequency-amplitude curve parameters. FFTSize
// is a float so modulation can move it; it is rounded at use.
type CurveConfig struct {
	MaxFrequency   float64
	MinFrequency   float64
	Smoothing      float64
	FFTSize        float64
	PositionY      float64
	Reflect        bool
	CurveSmoothing float64
	Rotation       float64
}

// DefaultCurveConfig returns the declared parameter defaults.
func DefaultCurveConfig() CurveConfig {
	return CurveConfig{
		MaxFrequency: 8000,
		MinFrequency: 20,
		Smoothing:    0.5,
		FFTSize:      2048,
		PositionY:    0.5,
	}
}

// Curve plots the Hann-windowed spectrum as one or two polylines across
// the image width, with an optional moving-average pass over the curve
// itself on top of the temporal smoothing.
type Curve struct {
	cfg CurveConfig
	ext *analysis.Extractor
}

// NewCurve creates the curve visualizer, clamping parameters into their
// declared ranges.
func NewCurve(cfg CurveConfig) *Curve {
	cfg.MaxFrequency = clampParam(curveParams, "max_frequency", cfg.MaxFrequency)
	cfg.MinFrequency = clampParam(curveParams, "min_frequency", cfg.MinFrequency)
	cfg.Smoothing = clampParam(curveParams, "smoothing", cfg.Smoothing)
	cfg.FFTSize = clampParam(curveParams, "fft_size", cfg.FFTSize)
	cfg.PositionY = clampParam(curveParams, "position_y", cfg.PositionY)
	cfg.CurveSmoothing = clampParam(curveParams, "curve_smoothing", cfg.CurveSmoothing)
	cfg.Rotation = clampParam(curveParams, "rotation", cfg.Rotation)
	return &Curve{cfg: cfg}
}

// Name implements Visualizer.
func (c *Curve) Name() string { return "curve" }

// ModifiableParams implements Visualizer.
func (c *Curve) ModifiableParams() []string {
	return []string{"max_frequency", "min_frequency", "smoothing", "fft_size",
		"position_y", "reflect", "curve_smoothing", "rotation"}
}

// Modulate implements Visualizer.
func (c *Curve) Modulate(param string, featureValue, strength float64, mode Mode) {
	switch param {
	case "max_frequency":
		c.cfg.MaxFrequency = Modulate(c.cfg.MaxFrequency, featureValue, strength, mode)
	case "min_frequency":
		c.cfg.MinFrequency = Modulate(c.cfg.MinFrequency, featureValue, strength, mode)
	case "smoothing":
		c.cfg.Smoothing = Modulate(c.cfg.Smoothing, featureValue, strength, mode)
	case "fft_size":
		c.cfg.FFTSize = Modulate(c.cfg.FFTSize, featureValue, strength, mode)
	case "position_y":
		c.cfg.PositionY = Modulate(c.cfg.PositionY, featureValue, strength, mode)
	case "reflect":
		c.cfg.Reflect = modulateBool(c.cfg.Reflect, featureValue, strength, mode)
	case "curve_smoothing":
		c.cfg.CurveSmoothing = Modulate(c.cfg.CurveSmoothing, featureValue, strength, mode)
	case "rotation":
		c.cfg.Rotation = Modulate(c.cfg.Rotation, featureValue, strength, mode)
	}
}

func (c *Curve) transformSize() int {
	n := int(math.Round(c.cfg.FFTSize))
	if n < 2 {
		n = 2
	}
	return n
}

// Analyze implements Visualizer. The feature vector keeps the native
// bin count of the selected frequency range.
func (c *Curve) Analyze(state *analysis.State, frame []float64, sampleRate float64) (*analysis.State, error) {
	size := c.transformSize()
	if c.ext == nil || c.ext.Size() != size || c.ext.SampleRate() != sampleRate {
		ext, err := analysis.NewExtractor(size, sampleRate, analysis.Hann)
		if err != nil {
			return state, err
		}
		c.ext = ext
	}
	data := c.ext.BandRange(frame, c.cfg.MinFrequency, c.cfg.MaxFrequency, 0)
	return analysis.Blend(state, data, clamp01(c.cfg.Smoothing)), nil
}

// Draw implements Visualizer.
func (c *Curve) Draw(state *analysis.State, width, height int) *image.RGBA {
	scene, ctx := newScene(width, height)
	applyRotation(ctx, c.cfg.Rotation, width, height)

	values := state.Values
	if c.cfg.CurveSmoothing > 0 {
		window := int(float64(len(values)) * c.cfg.CurveSmoothing)
		if window%2 == 0 {
			window++
		}
		if window > 2 {
			values = smoothCurve(values, window)
		}
	}

	n := len(values)
	if n > 1 {
		w, h := float64(width), float64(height)
		baseY := h - h*c.cfg.PositionY
		maxAmp := math.Min(baseY, h-baseY)

		strokeStyle(ctx, 1)
		drawPolyline(ctx, values, n, w, baseY, maxAmp, +1)
		if c.cfg.Reflect {
			drawPolyline(ctx, values, n, w, baseY, maxAmp, -1)
		}
	}

	return rasterize(scene, width, height)
}

func drawPolyline(ctx *canvas.Context, values []float64, n int, w, baseY, maxAmp, sign float64) {
	p := &canvas.Path{}
	for i, v := range values {
		x := w * float64(i) / float64(n-1)
		y := baseY + sign*v*maxAmp
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	ctx.DrawPath(0, 0, p)
}

// smoothCurve applies a same-length moving average with zero padding at
// the edges, independent of the temporal smoothing in Analyze.
func smoothCurve(values []float64, window int) []float64 {
	if window < 3 || len(values) == 0 {
		return values
	}
	half := window / 2
	out := make([]float64, len(values))
	for i := range values {
		var sum float64
		for j := i - half; j <= i+half; j++ {
			if j >= 0 && j < len(values) {
				sum += values[j]
			}
		}
		out[i] = sum / float64(window)
	}
	return out
}
