package inputmap

import (
	"fmt"
	"strings"
)

// ActionMapping binds a chord to a named action.
type ActionMapping struct {
	Name string
	Chord
	IsDefault bool // taken unchanged from a preset
}

// AxisMapping makes a key contribute Scale to a named axis. Mappings of the
// same axis with different scales are distinct bindings.
type AxisMapping struct {
	Name      string
	Key       Key
	Scale     float64
	IsDefault bool
}

// sameBinding compares everything but the default flag.
func (a ActionMapping) sameBinding(o ActionMapping) bool {
	return a.Name == o.Name && a.Chord == o.Chord
}

func (a AxisMapping) sameBinding(o AxisMapping) bool {
	return a.Name == o.Name && a.Key == o.Key && a.Scale == o.Scale
}

func (a ActionMapping) String() string {
	s := a.Name + ": " + a.Chord.String()
	if a.IsDefault {
		s += " (default)"
	}
	return s
}

func (a AxisMapping) String() string {
	key := string(a.Key)
	if key == "" {
		key = string(KeyNone)
	}
	s := fmt.Sprintf("%s: %s x%s", a.Name, key, formatScale(a.Scale))
	if a.IsDefault {
		s += " (default)"
	}
	return s
}

func formatScale(scale float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", scale), "0"), ".")
	if scale > 0 {
		s = "+" + s
	}
	return s
}
