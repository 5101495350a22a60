package viz

import "fmt"

// New builds a visualizer by name, applying any parameter overrides on
// top of the defaults. Override values are clamped by the constructors.
func New(name string, overrides map[string]float64) (Visualizer, error) {
	get := func(param string, def float64) float64 {
		if v, ok := overrides[param]; ok {
			return v
		}
		return def
	}
	getBool := func(param string, def bool) bool {
		if v, ok := overrides[param]; ok {
			return v != 0
		}
		return def
	}

	switch name {
	case "bar":
		cfg := DefaultBarConfig()
		cfg.Curvature = get("curvature", cfg.Curvature)
		cfg.Separation = get("separation", cfg.Separation)
		cfg.MaxHeight = get("max_height", cfg.MaxHeight)
		cfg.MinHeight = get("min_height", cfg.MinHeight)
		cfg.NumBars = get("num_bars", cfg.NumBars)
		cfg.Smoothing = get("smoothing", cfg.Smoothing)
		cfg.Rotation = get("rotation", cfg.Rotation)
		cfg.PositionY = get("position_y", cfg.PositionY)
		cfg.Reflect = getBool("reflect", cfg.Reflect)
		return NewBar(cfg), nil

	case "curve":
		cfg := DefaultCurveConfig()
		cfg.MaxFrequency = get("max_frequency", cfg.MaxFrequency)
		cfg.MinFrequency = get("min_frequency", cfg.MinFrequency)
		cfg.Smoothing = get("smoothing", cfg.Smoothing)
		cfg.FFTSize = get("fft_size", cfg.FFTSize)
		cfg.PositionY = get("position_y", cfg.PositionY)
		cfg.Reflect = getBool("reflect", cfg.Reflect)
		cfg.CurveSmoothing = get("curve_smoothing", cfg.CurveSmoothing)
		cfg.Rotation = get("rotation", cfg.Rotation)
		return NewCurve(cfg), nil

	case "circular":
		cfg := DefaultCircularConfig()
		cfg.MaxFrequency = get("max_frequency", cfg.MaxFrequency)
		cfg.MinFrequency = get("min_frequency", cfg.MinFrequency)
		cfg.Smoothing = get("smoothing", cfg.Smoothing)
		cfg.FFTSize = get("fft_size", cfg.FFTSize)
		cfg.NumPoints = get("num_points", cfg.NumPoints)
		cfg.Radius = get("radius", cfg.Radius)
		cfg.LineWidth = get("line_width", cfg.LineWidth)
		cfg.Rotation = get("rotation", cfg.Rotation)
		return NewCircular(cfg), nil

	case "circledeform":
		cfg := DefaultCircleDeformConfig()
		cfg.MaxFrequency = get("max_frequency", cfg.MaxFrequency)
		cfg.MinFrequency = get("min_frequency", cfg.MinFrequency)
		cfg.Smoothing = get("smoothing", cfg.Smoothing)
		cfg.FFTSize = get("fft_size", cfg.FFTSize)
		cfg.NumPoints = get("num_points", cfg.NumPoints)
		cfg.BaseRadius = get("base_radius", cfg.BaseRadius)
		cfg.AmplitudeScale = get("amplitude_scale", cfg.AmplitudeScale)
		cfg.LineWidth = get("line_width", cfg.LineWidth)
		cfg.Rotation = get("rotation", cfg.Rotation)
		return NewCircleDeform(cfg), nil
	}

	return nil, fmt.Errorf("unknown visualizer '%s'", name)
}
