package inputmap

import (
	"slices"
	"strings"
)

// testPolicy classifies "Gamepad_*" keys as gamepad and every other valid key
// as keyboard.
type testPolicy struct {
	allowMultiple    bool
	links            [][2]int
	preservedActions []string
	preservedAxes    []string
}

var axisKeys = []Key{"Gamepad_LeftX", "Gamepad_LeftY", "Gamepad_RightTriggerAxis"}

func (testPolicy) KeyGroup(key Key) string {
	switch {
	case !key.IsValid():
		return ""
	case strings.HasPrefix(string(key), "Gamepad_"):
		return "gamepad"
	default:
		return "keyboard"
	}
}

func (testPolicy) IsAxisKey(key Key) bool {
	return slices.Contains(axisKeys, key)
}

func (p testPolicy) AllowMultipleBindingsPerKey() bool {
	return p.allowMultiple
}

func (p testPolicy) UniqueBetweenGroups(source, target int) bool {
	if source == target {
		return true
	}
	for _, link := range p.links {
		if (link[0] == source && link[1] == target) || (link[0] == target && link[1] == source) {
			return true
		}
	}
	return false
}

func (p testPolicy) IsPreservedAction(name string) bool {
	return slices.Contains(p.preservedActions, name)
}

func (p testPolicy) IsPreservedAxis(name string) bool {
	return slices.Contains(p.preservedAxes, name)
}

func act(name string, key Key) ActionMapping {
	return ActionMapping{Name: name, Chord: Chord{Key: key}}
}

func axis(name string, key Key, scale float64) AxisMapping {
	return AxisMapping{Name: name, Key: key, Scale: scale}
}

// bindings lists the live mappings of a layout as sorted strings, ignoring
// which group holds them.
func bindings(l MappingLayout) []string {
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

// mergeLayouts runs the player merge pipeline on copies of its inputs.
func mergeLayouts(p Policy, preset, overrides MappingLayout) MappingLayout {
	merged := preset.Clone()
	merged.MergeUnboundMappings(p, overrides)
	merged.ApplyUnboundMappings(p)
	merged.MergeMappings(p, overrides)
	return merged
}
