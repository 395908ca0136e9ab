package config

import (
	"fmt"
	"strings"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// Preset returns a copy of the layout of the preset tagged tag.
func (c *Config) Preset(tag string) (inputmap.MappingLayout, bool) {
	layout, ok := c.presets[tag]
	if !ok {
		return inputmap.MappingLayout{}, false
	}
	return layout.Clone(), true
}

// PresetTags returns the preset tags in declaration order.
func (c *Config) PresetTags() []string {
	tags := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		tags = append(tags, p.Tag)
	}
	return tags
}

// PresetName returns the display name of a preset, falling back to its tag.
func (c *Config) PresetName(tag string) string {
	for _, p := range c.Presets {
		if p.Tag == tag && p.Name != "" {
			return p.Name
		}
	}
	return tag
}

// buildPreset turns a preset description into a layout whose mappings are
// all flagged as defaults.
func (c *Config) buildPreset(p PresetConfig) (inputmap.MappingLayout, error) {
	if len(p.Groups) > 0 && (len(p.Actions) > 0 || len(p.Axes) > 0) {
		return inputmap.MappingLayout{}, ErrMixedPresetLayout
	}

	var layout inputmap.MappingLayout
	if len(p.Groups) > 0 {
		for _, gc := range p.Groups {
			actions, axes, err := parseMappings(gc.Actions, gc.Axes)
			if err != nil {
				return inputmap.MappingLayout{}, err
			}
			layout.Groups = append(layout.Groups, inputmap.MappingGroup{Actions: actions, Axes: axes})
		}
	} else {
		actions, axes, err := parseMappings(p.Actions, p.Axes)
		if err != nil {
			return inputmap.MappingLayout{}, err
		}
		layout.SetMappings(c, actions, axes)
	}

	layout.MarkAllMappingsDefault()
	return layout, nil
}

func parseMappings(actionConfigs []ActionConfig, axisConfigs []AxisConfig) ([]inputmap.ActionMapping, []inputmap.AxisMapping, error) {
	var actions []inputmap.ActionMapping
	for _, a := range actionConfigs {
		chord, err := inputmap.ParseChord(a.Key)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: action %q: %w", ErrInvalidChord, a.Name, err)
		}
		actions = append(actions, inputmap.ActionMapping{Name: a.Name, Chord: chord})
	}

	var axes []inputmap.AxisMapping
	for _, a := range axisConfigs {
		key := strings.TrimSpace(a.Key)
		if key == "" || strings.Contains(key, "+") {
			return nil, nil, fmt.Errorf("%w: axis %q: %q", ErrInvalidChord, a.Name, a.Key)
		}
		scale := a.Scale
		if scale == 0 {
			scale = 1
		}
		axes = append(axes, inputmap.AxisMapping{Name: a.Name, Key: inputmap.Key(key), Scale: scale})
	}
	return actions, axes, nil
}
