package analysis

// State is the exponentially smoothed spectrum carried between frames.
// It is threaded explicitly through each frame call: the driver passes
// the previous frame's state in and keeps what Blend returns.
type State struct {
	Values []float64
}

// Blend folds data into prev with the smoothing factor alpha:
//
//	state[t] = alpha*state[t-1] + (1-alpha)*data[t]
//
// A nil prev, or one whose length no longer matches data, is
// reinitialized to zeros before blending. alpha of 0 adopts data
// outright; alpha of 1 keeps the previous state unchanged.
func Blend(prev *State, data []float64, alpha float64) *State {
	if prev == nil || len(prev.Values) != len(data) {
		prev = &State{Values: make([]float64, len(data))}
	}
	for i, x := range data {
		prev.Values[i] = alpha*prev.Values[i] + (1-alpha)*x
	}
	return prev
}

// Mean returns the average of the state values, or 0 for an empty state.
// Used as the self-derived feature value.
func (s *State) Mean() float64 {
	if s == nil || len(s.Values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}
