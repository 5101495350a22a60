package viz

import (
	"fmt"
	"strings"
)

// Mode selects how a feature value is combined with a parameter.
type Mode int

const (
	// ModeRelative treats feature 0.5 as neutral: values below shrink
	// the parameter, values above grow it, scaled by strength.
	ModeRelative Mode = iota
	// ModeAbsolute scales the parameter directly by feature*strength.
	ModeAbsolute
)

// ParseMode converts a string (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "relative", "":
		return ModeRelative, nil
	case "absolute":
		return ModeAbsolute, nil
	default:
		return ModeRelative, fmt.Errorf("unknown feature mode '%s'", s)
	}
}

// Modulate combines a parameter value with a feature value in [0,1].
func Modulate(value, feature, strength float64, mode Mode) float64 {
	if mode == ModeAbsolute {
		return value * feature * strength
	}
	return value * (1 + (feature-0.5)*strength)
}

// modulateBool runs boolean parameters through the same arithmetic,
// treating true as 1: the result is false only when it lands on zero.
func modulateBool(value bool, feature, strength float64, mode Mode) bool {
	v := 0.0
	if value {
		v = 1.0
	}
	return Modulate(v, feature, strength, mode) != 0
}
