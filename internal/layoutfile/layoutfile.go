// Package layoutfile reads and writes player mapping files in YAML.
//
// A file holds the state of one player: its base preset and either its
// overrides or, for files written by older versions, the full flattened
// layout (legacy: true).
package layoutfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/inputremap/internal/inputmap"
	"github.com/llehouerou/inputremap/internal/playermap"
)

var ErrInvalidAxisKey = errors.New("axis key must be a single key")

// File is the YAML document of one player.
type File struct {
	Player      string  `yaml:"player,omitempty"`
	PlayerIndex *int    `yaml:"player_index,omitempty"`
	Preset      string  `yaml:"preset,omitempty"`
	KeyGroup    string  `yaml:"key_group,omitempty"`
	Legacy      bool    `yaml:"legacy,omitempty"`
	Groups      []Group `yaml:"groups"`
}

// Group is one mapping group.
type Group struct {
	Actions        []Action `yaml:"actions,omitempty"`
	Axes           []Axis   `yaml:"axes,omitempty"`
	UnboundActions []Action `yaml:"unbound_actions,omitempty"`
	UnboundAxes    []Axis   `yaml:"unbound_axes,omitempty"`
}

type Action struct {
	Name    string `yaml:"name"`
	Key     string `yaml:"key"`
	Default bool   `yaml:"default,omitempty"`
}

type Axis struct {
	Name    string  `yaml:"name"`
	Key     string  `yaml:"key"`
	Scale   float64 `yaml:"scale"`
	Default bool    `yaml:"default,omitempty"`
}

// LoadFile loads and parses a mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults sets the scale of axes written without one to 1.
func applyDefaults(f *File) {
	for i := range f.Groups {
		g := &f.Groups[i]
		for _, axes := range [][]Axis{g.Axes, g.UnboundAxes} {
			for j := range axes {
				if axes[j].Scale == 0 {
					axes[j].Scale = 1
				}
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// Layout converts the groups of the file.
func (f *File) Layout() (inputmap.MappingLayout, error) {
	var l inputmap.MappingLayout
	for i, fg := range f.Groups {
		g := l.Group(i)
		var err error
		if g.Actions, err = toActions(fg.Actions); err != nil {
			return inputmap.MappingLayout{}, fmt.Errorf("group %d: %w", i, err)
		}
		if g.Axes, err = toAxes(fg.Axes); err != nil {
			return inputmap.MappingLayout{}, fmt.Errorf("group %d: %w", i, err)
		}
		if g.UnboundActions, err = toActions(fg.UnboundActions); err != nil {
			return inputmap.MappingLayout{}, fmt.Errorf("group %d: %w", i, err)
		}
		if g.UnboundAxes, err = toAxes(fg.UnboundAxes); err != nil {
			return inputmap.MappingLayout{}, fmt.Errorf("group %d: %w", i, err)
		}
	}
	return l, nil
}

// PlayerMappings converts the file into player state. The groups of a
// legacy file become the legacy preset, to be migrated with
// MigrateLegacy.
func (f *File) PlayerMappings() (playermap.PlayerInputMappings, error) {
	layout, err := f.Layout()
	if err != nil {
		return playermap.PlayerInputMappings{}, err
	}

	m := playermap.PlayerInputMappings{
		PlayerID:       f.Player,
		BasePresetTag:  f.Preset,
		PlayerKeyGroup: f.KeyGroup,
	}
	m.Legacy.PlayerIndex = f.PlayerIndex
	if f.Legacy {
		m.Legacy.Preset = playermap.LegacyPreset{PresetTag: f.Preset, MappingGroups: layout}
	} else {
		m.MappingOverrides = layout
	}
	return m, nil
}

// FromPlayer returns the file of a player state. Legacy state is not
// written back.
func FromPlayer(m playermap.PlayerInputMappings) *File {
	f := FromLayout(m.MappingOverrides)
	f.Player = m.PlayerID
	f.Preset = m.BasePresetTag
	f.KeyGroup = m.PlayerKeyGroup
	return f
}

// FromLayout returns a file holding the groups of l.
func FromLayout(l inputmap.MappingLayout) *File {
	f := &File{Groups: make([]Group, 0, len(l.Groups))}
	for _, g := range l.Groups {
		f.Groups = append(f.Groups, Group{
			Actions:        fromActions(g.Actions),
			Axes:           fromAxes(g.Axes),
			UnboundActions: fromActions(g.UnboundActions),
			UnboundAxes:    fromAxes(g.UnboundAxes),
		})
	}
	return f
}

func toActions(actions []Action) ([]inputmap.ActionMapping, error) {
	if len(actions) == 0 {
		return nil, nil
	}
	result := make([]inputmap.ActionMapping, 0, len(actions))
	for _, a := range actions {
		chord, err := inputmap.ParseChord(a.Key)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", a.Name, err)
		}
		result = append(result, inputmap.ActionMapping{Name: a.Name, Chord: chord, IsDefault: a.Default})
	}
	return result, nil
}

func toAxes(axes []Axis) ([]inputmap.AxisMapping, error) {
	if len(axes) == 0 {
		return nil, nil
	}
	result := make([]inputmap.AxisMapping, 0, len(axes))
	for _, a := range axes {
		key := strings.TrimSpace(a.Key)
		if key == "" || strings.Contains(key, "+") {
			return nil, fmt.Errorf("axis %q: %w: %q", a.Name, ErrInvalidAxisKey, a.Key)
		}
		result = append(result, inputmap.AxisMapping{
			Name:      a.Name,
			Key:       inputmap.Key(key),
			Scale:     a.Scale,
			IsDefault: a.Default,
		})
	}
	return result, nil
}

func fromActions(actions []inputmap.ActionMapping) []Action {
	if len(actions) == 0 {
		return nil
	}
	result := make([]Action, 0, len(actions))
	for _, a := range actions {
		result = append(result, Action{Name: a.Name, Key: a.Chord.String(), Default: a.IsDefault})
	}
	return result
}

func fromAxes(axes []inputmap.AxisMapping) []Axis {
	if len(axes) == 0 {
		return nil
	}
	result := make([]Axis, 0, len(axes))
	for _, a := range axes {
		key := string(a.Key)
		if key == "" {
			key = string(inputmap.KeyNone)
		}
		result = append(result, Axis{Name: a.Name, Key: key, Scale: a.Scale, Default: a.IsDefault})
	}
	return result
}
