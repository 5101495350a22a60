// Package feature supplies per-frame scalar values in [0,1] used to
// modulate a single render parameter. Sources are precomputed over the
// whole track so lookups during the render loop are trivial.
package feature

// Source exposes one scalar per frame index, nominally in [0,1].
type Source interface {
	ValueAt(frame int) float64
}

// Constant is a fixed feature value for every frame.
type Constant float64

// ValueAt implements Source.
func (c Constant) ValueAt(int) float64 { return float64(c) }

// Envelope is a precomputed per-frame value curve. Indices outside the
// curve clamp to the nearest end; an empty envelope reads as 0.
type Envelope struct {
	values []float64
}

// NewEnvelope wraps precomputed per-frame values.
func NewEnvelope(values []float64) *Envelope {
	return &Envelope{values: values}
}

// ValueAt implements Source.
func (e *Envelope) ValueAt(frame int) float64 {
	if len(e.values) == 0 {
		return 0
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= len(e.values) {
		frame = len(e.values) - 1
	}
	return e.values[frame]
}

// Len returns the number of frames the envelope covers.
func (e *Envelope) Len() int { return len(e.values) }

// normalizePeak scales values so the largest becomes 1. All-zero input
// is left as is.
func normalizePeak(values []float64) {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return
	}
	for i := range values {
		values[i] /= max
	}
}
