package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

const (
	appName         = "inputremap"
	configFileName  = "config.toml"
	localConfigName = "inputremap.toml"
)

var (
	ErrEmptyPresetTag       = errors.New("preset has no tag")
	ErrDuplicatePreset      = errors.New("duplicate preset tag")
	ErrMixedPresetLayout    = errors.New("preset sets both groups and flat mappings")
	ErrUnknownDefaultPreset = errors.New("default preset is not defined")
	ErrUnknownPreset        = errors.New("preset is not defined")
	ErrInvalidChord         = errors.New("invalid key chord")
	ErrBadKeyPattern        = errors.New("invalid key pattern")
)

type Config struct {
	DefaultPreset          string   `koanf:"default_preset"`
	MultipleBindingsPerKey bool     `koanf:"allow_multiple_bindings_per_key"`
	PreservedActions       []string `koanf:"preserved_actions"` // never overwritten when applying a layout
	PreservedAxes          []string `koanf:"preserved_axes"`
	AxisKeys               []string `koanf:"axis_keys"`           // key patterns reporting both axis directions
	MappingGroupLinks      [][]int  `koanf:"mapping_group_links"` // groups whose bindings must not share keys

	KeyGroups []KeyGroup     `koanf:"key_groups"` // first matching group wins
	Presets   []PresetConfig `koanf:"presets"`

	presets map[string]inputmap.MappingLayout
}

// KeyGroup tags the keys matching one of its patterns (path.Match syntax).
type KeyGroup struct {
	Tag  string   `koanf:"tag"`
	Keys []string `koanf:"keys"`
}

// PresetConfig describes a preset either as explicit mapping groups or as
// flat lists packed into groups.
type PresetConfig struct {
	Tag     string         `koanf:"tag"`
	Name    string         `koanf:"name"`
	Groups  []GroupConfig  `koanf:"groups"`
	Actions []ActionConfig `koanf:"actions"`
	Axes    []AxisConfig   `koanf:"axes"`
}

// GroupConfig lists the mappings of one mapping group.
type GroupConfig struct {
	Actions []ActionConfig `koanf:"actions"`
	Axes    []AxisConfig   `koanf:"axes"`
}

// ActionConfig binds a chord such as "Shift+F" to an action.
type ActionConfig struct {
	Name string `koanf:"name"`
	Key  string `koanf:"key"`
}

// AxisConfig binds a key to an axis. Scale defaults to 1.
type AxisConfig struct {
	Name  string  `koanf:"name"`
	Key   string  `koanf:"key"`
	Scale float64 `koanf:"scale"`
}

var defaultKeyGroups = []KeyGroup{
	{Tag: "gamepad", Keys: []string{"Gamepad_*"}},
	{Tag: "keyboard", Keys: []string{"*"}},
}

var defaultAxisKeys = []string{
	"Gamepad_LeftX",
	"Gamepad_LeftY",
	"Gamepad_RightX",
	"Gamepad_RightY",
	"Gamepad_LeftTriggerAxis",
	"Gamepad_RightTriggerAxis",
	"MouseX",
	"MouseY",
	"MouseWheelAxis",
}

// Load reads the user config and the local config, the local one winning.
// Missing files are skipped.
func Load() (*Config, error) {
	var paths []string
	for _, p := range getConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return LoadFile(paths...)
}

// LoadFile reads the given TOML files in order, later files winning.
func LoadFile(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, p := range paths {
		if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.init(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/inputremap/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./inputremap.toml (pwd, highest priority)
		localConfigName,
	}
}

// init applies defaults, validates and builds the preset layouts.
func (c *Config) init() error {
	if len(c.KeyGroups) == 0 {
		c.KeyGroups = slices.Clone(defaultKeyGroups)
	}
	if len(c.AxisKeys) == 0 {
		c.AxisKeys = slices.Clone(defaultAxisKeys)
	}

	for _, g := range c.KeyGroups {
		if err := checkPatterns(g.Keys); err != nil {
			return fmt.Errorf("key group %q: %w", g.Tag, err)
		}
	}
	if err := checkPatterns(c.AxisKeys); err != nil {
		return fmt.Errorf("axis keys: %w", err)
	}

	c.presets = make(map[string]inputmap.MappingLayout, len(c.Presets))
	for _, p := range c.Presets {
		if p.Tag == "" {
			return ErrEmptyPresetTag
		}
		if _, ok := c.presets[p.Tag]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePreset, p.Tag)
		}
		layout, err := c.buildPreset(p)
		if err != nil {
			return fmt.Errorf("preset %q: %w", p.Tag, err)
		}
		c.presets[p.Tag] = layout
	}

	if c.DefaultPreset == "" && len(c.Presets) > 0 {
		c.DefaultPreset = c.Presets[0].Tag
	}
	if _, ok := c.presets[c.DefaultPreset]; c.DefaultPreset != "" && !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDefaultPreset, c.DefaultPreset)
	}
	return nil
}

func checkPatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			return fmt.Errorf("%w %q", ErrBadKeyPattern, p)
		}
	}
	return nil
}

func matchesAny(patterns []string, key inputmap.Key) bool {
	for _, p := range patterns {
		if ok, _ := path.Match(p, string(key)); ok {
			return true
		}
	}
	return false
}
