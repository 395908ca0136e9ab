package keymap

import "github.com/llehouerou/inputremap/internal/inputmap"

// AxisContribution is what pressing a key adds to an axis.
type AxisContribution struct {
	Axis  string
	Scale float64
}

// Resolver maps chords to actions and keys to axis contributions.
type Resolver struct {
	actions  map[inputmap.Chord][]string         // chord -> actions
	axes     map[inputmap.Key][]AxisContribution // key -> axis contributions
	byAction map[string][]inputmap.Chord         // action -> chords (for help/documentation)
}

// NewResolver creates a resolver from flat mapping tables. Mappings on
// invalid keys are ignored.
func NewResolver(actions []inputmap.ActionMapping, axes []inputmap.AxisMapping) *Resolver {
	r := &Resolver{
		actions:  make(map[inputmap.Chord][]string),
		axes:     make(map[inputmap.Key][]AxisContribution),
		byAction: make(map[string][]inputmap.Chord),
	}
	for _, m := range actions {
		if !m.Key.IsValid() {
			continue
		}
		r.actions[m.Chord] = append(r.actions[m.Chord], m.Name)
		r.byAction[m.Name] = append(r.byAction[m.Name], m.Chord)
	}
	for _, m := range axes {
		if !m.Key.IsValid() {
			continue
		}
		r.axes[m.Key] = append(r.axes[m.Key], AxisContribution{Axis: m.Name, Scale: m.Scale})
	}
	// The same binding may come from several mapping groups
	for chord, names := range r.actions {
		r.actions[chord] = dedupe(names)
	}
	for action, chords := range r.byAction {
		r.byAction[action] = dedupe(chords)
	}
	for key, contributions := range r.axes {
		r.axes[key] = dedupe(contributions)
	}
	return r
}

// Resolve returns the actions fired by a chord, or nil if it is not bound.
func (r *Resolver) Resolve(chord inputmap.Chord) []string {
	return r.actions[chord]
}

// AxisContributions returns what a key adds to each axis it drives.
func (r *Resolver) AxisContributions(key inputmap.Key) []AxisContribution {
	return r.axes[key]
}

// AxisValue sums the contributions of the pressed keys to an axis.
func (r *Resolver) AxisValue(axis string, pressed ...inputmap.Key) float64 {
	var value float64
	for _, key := range pressed {
		for _, c := range r.axes[key] {
			if c.Axis == axis {
				value += c.Scale
			}
		}
	}
	return value
}

// KeysFor returns the chords bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action string) []inputmap.Chord {
	return r.byAction[action]
}

// dedupe removes duplicates from a slice, keeping the first occurrence.
func dedupe[T comparable](s []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
