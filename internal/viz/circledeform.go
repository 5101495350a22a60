package viz

import (
	"image"
	"math"

	"github.com/tdewolff/canvas"

	"specviz/internal/analysis"
)

// CircleDeformConfig holds the deformed-circle visualizer parameters.
type CircleDeformConfig struct {
	MaxFrequency   float64
	MinFrequency   float64
	Smoothing      float64
	FFTSize        float64
	NumPoints      float64
	BaseRadius     float64
	AmplitudeScale float64
	LineWidth      float64
	Rotation       float64
}

// DefaultCircleDeformConfig returns the declared parameter defaults.
func DefaultCircleDeformConfig() CircleDeformConfig {
	return CircleDeformConfig{
		MaxFrequency:   8000,
		MinFrequency:   20,
		Smoothing:      0.5,
		FFTSize:        2048,
		NumPoints:      360,
		BaseRadius:     200,
		AmplitudeScale: 100,
		LineWidth:      2,
	}
}

// CircleDeform draws one closed polyline whose radius at each angle is
// the base radius plus the spectrum value scaled by amplitude.
type CircleDeform struct {
	cfg CircleDeformConfig
	ext *analysis.Extractor
}

// NewCircleDeform creates the deformed-circle visualizer, clamping
// parameters into their declared ranges.
func NewCircleDeform(cfg CircleDeformConfig) *CircleDeform {
	cfg.MaxFrequency = clampParam(circleDeformParams, "max_frequency", cfg.MaxFrequency)
	cfg.MinFrequency = clampParam(circleDeformParams, "min_frequency", cfg.MinFrequency)
	cfg.Smoothing = clampParam(circleDeformParams, "smoothing", cfg.Smoothing)
	cfg.FFTSize = clampParam(circleDeformParams, "fft_size", cfg.FFTSize)
	cfg.NumPoints = clampParam(circleDeformParams, "num_points", cfg.NumPoints)
	cfg.BaseRadius = clampParam(circleDeformParams, "base_radius", cfg.BaseRadius)
	cfg.AmplitudeScale = clampParam(circleDeformParams, "amplitude_scale", cfg.AmplitudeScale)
	cfg.LineWidth = clampParam(circleDeformParams, "line_width", cfg.LineWidth)
	cfg.Rotation = clampParam(circleDeformParams, "rotation", cfg.Rotation)
	return &CircleDeform{cfg: cfg}
}

// Name implements Visualizer.
func (c *CircleDeform) Name() string { return "circledeform" }

// ModifiableParams implements Visualizer.
func (c *CircleDeform) ModifiableParams() []string {
	return []string{"max_frequency", "min_frequency", "smoothing", "fft_size",
		"base_radius", "num_points", "amplitude_scale", "line_width", "rotation"}
}

// Modulate implements Visualizer.
func (c *CircleDeform) Modulate(param string, featureValue, strength float64, mode Mode) {
	switch param {
	case "max_frequency":
		c.cfg.MaxFrequency = Modulate(c.cfg.MaxFrequency, featureValue, strength, mode)
	case "min_frequency":
		c.cfg.MinFrequency = Modulate(c.cfg.MinFrequency, featureValue, strength, mode)
	case "smoothing":
		c.cfg.Smoothing = Modulate(c.cfg.Smoothing, featureValue, strength, mode)
	case "fft_size":
		c.cfg.FFTSize = Modulate(c.cfg.FFTSize, featureValue, strength, mode)
	case "base_radius":
		c.cfg.BaseRadius = Modulate(c.cfg.BaseRadius, featureValue, strength, mode)
	case "num_points":
		c.cfg.NumPoints = Modulate(c.cfg.NumPoints, featureValue, strength, mode)
	case "amplitude_scale":
		c.cfg.AmplitudeScale = Modulate(c.cfg.AmplitudeScale, featureValue, strength, mode)
	case "line_width":
		c.cfg.LineWidth = Modulate(c.cfg.LineWidth, featureValue, strength, mode)
	case "rotation":
		c.cfg.Rotation = Modulate(c.cfg.Rotation, featureValue, strength, mode)
	}
}

func (c *CircleDeform) pointCount() int {
	n := int(math.Round(c.cfg.NumPoints))
	if n < 1 {
		n = 1
	}
	return n
}

func (c *CircleDeform) transformSize() int {
	n := int(math.Round(c.cfg.FFTSize))
	if n < 2 {
		n = 2
	}
	return n
}

// Analyze implements Visualizer.
func (c *CircleDeform) Analyze(state *analysis.State, frame []float64, sampleRate float64) (*analysis.State, error) {
	size := c.transformSize()
	if c.ext == nil || c.ext.Size() != size || c.ext.SampleRate() != sampleRate {
		ext, err := analysis.NewExtractor(size, sampleRate, analysis.Hann)
		if err != nil {
			return state, err
		}
		c.ext = ext
	}
	data := c.ext.BandRange(frame, c.cfg.MinFrequency, c.cfg.MaxFrequency, c.pointCount())
	return analysis.Blend(state, data, clamp01(c.cfg.Smoothing)), nil
}

// Draw implements Visualizer. The closed outline needs at least three
// points; below that nothing is drawn.
func (c *CircleDeform) Draw(state *analysis.State, width, height int) *image.RGBA {
	n := c.pointCount()
	values := state.Values
	if len(values) != n {
		values = analysis.Resample(values, n)
	}

	scene, ctx := newScene(width, height)

	if n > 2 {
		cx, cy := float64(width)/2, float64(height)/2
		rotRad := math.Mod(c.cfg.Rotation, 360) * math.Pi / 180

		p := &canvas.Path{}
		for i, v := range values {
			angle := 2*math.Pi*float64(i)/float64(n) + rotRad
			r := c.cfg.BaseRadius + v*c.cfg.AmplitudeScale
			x, y := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
			if i == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
		p.Close()

		strokeStyle(ctx, c.cfg.LineWidth)
		ctx.DrawPath(0, 0, p)
	}

	return rasterize(scene, width, height)
}
