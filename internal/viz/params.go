package viz

import (
	applog "specviz/internal/log"
)

// ParamSpec declares one host-facing parameter: its range and default.
// Boolean parameters use 0/1 with IsBool set.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
	IsBool  bool
}

// Parameter tables per visualizer, mirrored by each variant's config
// struct. These drive the list command and construction-time clamping.
var (
	barParams = []ParamSpec{
		{Name: "curvature", Min: 0, Max: 50, Default: 0},
		{Name: "separation", Min: 0, Max: 100, Default: 5},
		{Name: "max_height", Min: 10, Max: 2000, Default: 200},
		{Name: "min_height", Min: 0, Max: 500, Default: 10},
		{Name: "num_bars", Min: 1, Max: 1024, Default: 64},
		{Name: "smoothing", Min: 0, Max: 1, Default: 0.5},
		{Name: "rotation", Min: 0, Max: 360, Default: 0},
		{Name: "position_y", Min: 0, Max: 1, Default: 0.5},
		{Name: "reflect", IsBool: true},
	}

	curveParams = []ParamSpec{
		{Name: "max_frequency", Min: 20, Max: 20000, Default: 8000},
		{Name: "min_frequency", Min: 20, Max: 20000, Default: 20},
		{Name: "smoothing", Min: 0, Max: 1, Default: 0.5},
		{Name: "fft_size", Min: 256, Max: 8192, Default: 2048},
		{Name: "position_y", Min: 0, Max: 1, Default: 0.5},
		{Name: "reflect", IsBool: true},
		{Name: "curve_smoothing", Min: 0, Max: 1, Default: 0},
		{Name: "rotation", Min: 0, Max: 360, Default: 0},
	}

	circularParams = []ParamSpec{
		{Name: "max_frequency", Min: 20, Max: 20000, Default: 8000},
		{Name: "min_frequency", Min: 20, Max: 20000, Default: 20},
		{Name: "smoothing", Min: 0, Max: 1, Default: 0.5},
		{Name: "fft_size", Min: 256, Max: 8192, Default: 2048},
		{Name: "num_points", Min: 3, Max: 1000, Default: 360},
		{Name: "radius", Min: 10, Max: 1000, Default: 200},
		{Name: "line_width", Min: 1, Max: 10, Default: 2},
		{Name: "rotation", Min: 0, Max: 360, Default: 0},
	}

	circleDeformParams = []ParamSpec{
		{Name: "max_frequency", Min: 20, Max: 20000, Default: 8000},
		{Name: "min_frequency", Min: 20, Max: 20000, Default: 20},
		{Name: "smoothing", Min: 0, Max: 1, Default: 0.5},
		{Name: "fft_size", Min: 256, Max: 8192, Default: 2048},
		{Name: "num_points", Min: 3, Max: 1000, Default: 360},
		{Name: "base_radius", Min: 10, Max: 1000, Default: 200},
		{Name: "amplitude_scale", Min: 1, Max: 1000, Default: 100},
		{Name: "line_width", Min: 1, Max: 10, Default: 2},
		{Name: "rotation", Min: 0, Max: 360, Default: 0},
	}
)

// clampParam clamps v into the declared range for name, logging when
// the value had to move. Unknown names pass through unchanged.
func clampParam(specs []ParamSpec, name string, v float64) float64 {
	for _, s := range specs {
		if s.Name == name {
			return clampTo(s, name, v)
		}
	}
	return v
}

func clampTo(s ParamSpec, name string, v float64) float64 {
	if s.IsBool {
		return v
	}
	if v < s.Min {
		applog.Warnf("Viz: %s=%.3f below minimum, clamping to %.3f", name, v, s.Min)
		return s.Min
	}
	if v > s.Max {
		applog.Warnf("Viz: %s=%.3f above maximum, clamping to %.3f", name, v, s.Max)
		return s.Max
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
