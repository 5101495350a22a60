// Package viz holds the four audio-reactive visualizers, the parameter
// modulation they share and the sequence driver that runs the per-frame
// analyze/modulate/draw loop.
package viz

import (
	"image"

	"specviz/internal/analysis"
)

// Visualizer is one visual style. Implementations keep their render
// parameters but no spectrum history: the smoothed state is passed in
// and returned explicitly on each frame.
type Visualizer interface {
	// Name identifies the visualizer ("bar", "curve", ...).
	Name() string

	// ModifiableParams lists the parameter names a feature may modulate.
	ModifiableParams() []string

	// Modulate scales the named parameter by the feature value. The
	// change is applied to the working parameters and therefore carries
	// into subsequent frames. Unknown names are ignored.
	Modulate(param string, featureValue, strength float64, mode Mode)

	// Analyze extracts the frame's feature vector and folds it into
	// state, returning the updated state.
	Analyze(state *analysis.State, frame []float64, sampleRate float64) (*analysis.State, error)

	// Draw rasterizes the current state into a width×height image,
	// white geometry on black.
	Draw(state *analysis.State, width, height int) *image.RGBA
}

// Descriptor describes a visualizer for host/CLI introspection.
type Descriptor struct {
	Name   string
	Params []ParamSpec
}

// Registry lists the available visualizers and their parameters.
func Registry() []Descriptor {
	return []Descriptor{
		{Name: "bar", Params: barParams},
		{Name: "curve", Params: curveParams},
		{Name: "circular", Params: circularParams},
		{Name: "circledeform", Params: circleDeformParams},
	}
}
