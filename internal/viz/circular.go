package viz

import (
	"image"
	"math"

	"github.com/tdewolff/canvas"

	"specviz/internal/analysis"
)

// CircularConfig holds the radial-line visualizer parameters. FFTSize
// and NumPoints are floats so modulation can move them; rounded at use.
type CircularConfig struct {
	MaxFrequency float64
	MinFrequency float64
	Smoothing    float64
	FFTSize      float64
	NumPoints    float64
	Radius       float64
	LineWidth    float64
	Rotation     float64
}

// DefaultCircularConfig returns the declared parameter defaults.
func DefaultCircularConfig() CircularConfig {
	return CircularConfig{
		MaxFrequency: 8000,
		MinFrequency: 20,
		Smoothing:    0.5,
		FFTSize:      2048,
		NumPoints:    360,
		Radius:       200,
		LineWidth:    2,
	}
}

// Circular draws one radial line per spectrum point, from a fixed
// circle outward in proportion to the point's smoothed value.
type Circular struct {
	cfg CircularConfig
	ext *analysis.Extractor
}

// NewCircular creates the circular visualizer, clamping parameters into
// their declared ranges.
func NewCircular(cfg CircularConfig) *Circular {
	cfg.MaxFrequency = clampParam(circularParams, "max_frequency", cfg.MaxFrequency)
	cfg.MinFrequency = clampParam(circularParams, "min_frequency", cfg.MinFrequency)
	cfg.Smoothing = clampParam(circularParams, "smoothing", cfg.Smoothing)
	cfg.FFTSize = clampParam(circularParams, "fft_size", cfg.FFTSize)
	cfg.NumPoints = clampParam(circularParams, "num_points", cfg.NumPoints)
	cfg.Radius = clampParam(circularParams, "radius", cfg.Radius)
	cfg.LineWidth = clampParam(circularParams, "line_width", cfg.LineWidth)
	cfg.Rotation = clampParam(circularParams, "rotation", cfg.Rotation)
	return &Circular{cfg: cfg}
}

// Name implements Visualizer.
func (c *Circular) Name() string { return "circular" }

// ModifiableParams implements Visualizer.
func (c *Circular) ModifiableParams() []string {
	return []string{"max_frequency", "min_frequency", "smoothing", "fft_size",
		"radius", "num_points", "line_width", "rotation"}
}

// Modulate implements Visualizer.
func (c *Circular) Modulate(param string, featureValue, strength float64, mode Mode) {
	switch param {
	case "max_frequency":
		c.cfg.MaxFrequency = Modulate(c.cfg.MaxFrequency, featureValue, strength, mode)
	case "min_frequency":
		c.cfg.MinFrequency = Modulate(c.cfg.MinFrequency, featureValue, strength, mode)
	case "smoothing":
		c.cfg.Smoothing = Modulate(c.cfg.Smoothing, featureValue, strength, mode)
	case "fft_size":
		c.cfg.FFTSize = Modulate(c.cfg.FFTSize, featureValue, strength, mode)
	case "radius":
		c.cfg.Radius = Modulate(c.cfg.Radius, featureValue, strength, mode)
	case "num_points":
		c.cfg.NumPoints = Modulate(c.cfg.NumPoints, featureValue, strength, mode)
	case "line_width":
		c.cfg.LineWidth = Modulate(c.cfg.LineWidth, featureValue, strength, mode)
	case "rotation":
		c.cfg.Rotation = Modulate(c.cfg.Rotation, featureValue, strength, mode)
	}
}

func (c *Circular) pointCount() int {
	n := int(math.Round(c.cfg.NumPoints))
	if n < 1 {
		n = 1
	}
	return n
}

func (c *Circular) transformSize() int {
	n := int(math.Round(c.cfg.FFTSize))
	if n < 2 {
		n = 2
	}
	return n
}

// Analyze implements Visualizer.
func (c *Circular) Analyze(state *analysis.State, frame []float64, sampleRate float64) (*analysis.State, error) {
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

// Draw implements Visualizer. Rotation offsets the point placement
// angles rather than rotating the finished image.
func (c *Circular) Draw(state *analysis.State, width, height int) *image.RGBA {
	n := c.pointCount()
	values := state.Values
	if len(values) != n {
		values = analysis.Resample(values, n)
	}

	scene, ctx := newScene(width, height)
	cx, cy := float64(width)/2, float64(height)/2
	rotRad := math.Mod(c.cfg.Rotation, 360) * math.Pi / 180
	radius := c.cfg.Radius

	p := &canvas.Path{}
	for i, v := range values {
		angle := 2*math.Pi*float64(i)/float64(n) + rotRad
		extended := radius + v*radius
		p.MoveTo(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		p.LineTo(cx+extended*math.Cos(angle), cy+extended*math.Sin(angle))
	}

	strokeStyle(ctx, c.cfg.LineWidth)
	ctx.DrawPath(0, 0, p)

	return rasterize(scene, width, height)
}
