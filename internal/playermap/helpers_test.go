package playermap

import (
	"slices"
	"strings"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// fakeConfig classifies "Gamepad_*" keys as gamepad and every other valid
// key as keyboard. Gamepad_LeftX is the only axis key.
type fakeConfig struct {
	presets map[string]inputmap.MappingLayout
	links   [][2]int
}

func (fakeConfig) KeyGroup(key inputmap.Key) string {
	switch {
	case !key.IsValid():
		return ""
	case strings.HasPrefix(string(key), "Gamepad_"):
		return "gamepad"
	default:
		return "keyboard"
	}
}

func (fakeConfig) IsAxisKey(key inputmap.Key) bool   { return key == "Gamepad_LeftX" }
func (fakeConfig) AllowMultipleBindingsPerKey() bool { return false }
func (fakeConfig) IsPreservedAction(string) bool     { return false }
func (fakeConfig) IsPreservedAxis(string) bool       { return false }
func (fakeConfig) DefaultKeyGroup() string           { return "gamepad" }

func (c fakeConfig) UniqueBetweenGroups(source, target int) bool {
	if source == target {
		return true
	}
	for _, link := range c.links {
		if (link[0] == source && link[1] == target) || (link[0] == target && link[1] == source) {
			return true
		}
	}
	return false
}

func (c fakeConfig) Preset(tag string) (inputmap.MappingLayout, bool) {
	l, ok := c.presets[tag]
	if !ok {
		return inputmap.MappingLayout{}, false
	}
	return l.Clone(), true
}

var _ Config = fakeConfig{}

func act(name string, key inputmap.Key) inputmap.ActionMapping {
	return inputmap.ActionMapping{Name: name, Chord: inputmap.Chord{Key: key}}
}

func axis(name string, key inputmap.Key, scale float64) inputmap.AxisMapping {
	return inputmap.AxisMapping{Name: name, Key: key, Scale: scale}
}

func defaultPreset() inputmap.MappingLayout {
	l := inputmap.NewMappingLayout(
		inputmap.MappingGroup{
			Actions: []inputmap.ActionMapping{
				act("Jump", "SpaceBar"),
				act("Fire", "LeftMouseButton"),
				act("Jump", "Gamepad_FaceButton_Bottom"),
			},
			Axes: []inputmap.AxisMapping{
				axis("MoveX", "A", -1),
				axis("MoveX", "D", 1),
				axis("MoveX", "Gamepad_LeftX", 1),
			},
		},
		inputmap.MappingGroup{
			Actions: []inputmap.ActionMapping{act("Crouch", "C")},
		},
	)
	l.MarkAllMappingsDefault()
	return l
}

func newConfig() fakeConfig {
	return fakeConfig{presets: map[string]inputmap.MappingLayout{
		"default": defaultPreset(),
		"empty":   {},
	}}
}

// presetBindings lists the bindings of the default preset as rendered by
// bindings.
var presetBindings = []string{
	"Crouch: C (default)",
	"Fire: LeftMouseButton (default)",
	"Jump: Gamepad_FaceButton_Bottom (default)",
	"Jump: SpaceBar (default)",
	"MoveX: A x-1 (default)",
	"MoveX: D x+1 (default)",
	"MoveX: Gamepad_LeftX x+1 (default)",
}

// bindings lists the live mappings of a layout as sorted strings, ignoring
// which group holds them.
func bindings(l inputmap.MappingLayout) []string {
	var result []string
	for _, m := range l.Actions() {
		result = append(result, m.String())
	}
	for _, m := range l.Axes() {
		result = append(result, m.String())
	}
	slices.Sort(result)
	return result
}

// replace returns a sorted copy of list with old swapped for with. An empty
// with drops old.
func replace(list []string, old, with string) []string {
	result := slices.Clone(list)
	i := slices.Index(result, old)
	if i < 0 {
		return result
	}
	if with == "" {
		result = slices.Delete(result, i, i+1)
	} else {
		result[i] = with
	}
	slices.Sort(result)
	return result
}
