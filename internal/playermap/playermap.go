// Package playermap holds the input mapping state of one player: the preset
// it starts from and the overrides it made on top.
package playermap

import (
	"log/slog"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// Config is the read-only source of mapping rules and presets.
type Config interface {
	inputmap.Policy
	Preset(tag string) (inputmap.MappingLayout, bool)
	DefaultKeyGroup() string
}

// PlayerInputMappings is the saved mapping state of one player.
type PlayerInputMappings struct {
	PlayerID       string
	BasePresetTag  string
	PlayerKeyGroup string // informational, UIs start editing this key group

	// MappingOverrides holds the bindings the player changed and unbound
	// markers for the preset bindings the player removed.
	MappingOverrides inputmap.MappingLayout

	Legacy LegacyMappings
}

// LegacyMappings is the state saved by older versions, which stored a
// player index and the full flattened layout. See MigrateLegacy.
type LegacyMappings struct {
	PlayerIndex *int
	Preset      LegacyPreset
}

type LegacyPreset struct {
	PresetTag     string
	MappingGroups inputmap.MappingLayout
}

// New returns the mappings of a player starting from preset presetTag.
func New(cfg Config, playerID, presetTag string) PlayerInputMappings {
	return PlayerInputMappings{
		PlayerID:       playerID,
		BasePresetTag:  presetTag,
		PlayerKeyGroup: cfg.DefaultKeyGroup(),
	}
}

// BasePresetMappings returns the layout of the base preset. An unknown tag
// gives an empty layout.
func (m *PlayerInputMappings) BasePresetMappings(cfg Config) inputmap.MappingLayout {
	layout, ok := cfg.Preset(m.BasePresetTag)
	if !ok {
		return inputmap.MappingLayout{}
	}
	return layout
}

// BuildMergedMappingLayout merges the overrides on top of the base preset.
// Unbound markers are merged and applied before the replacements, so a
// replacement never gets erased by a marker of the same override set. With
// debug set every stage is logged.
func (m *PlayerInputMappings) BuildMergedMappingLayout(cfg Config, debug bool) inputmap.MappingLayout {
	layout := m.BasePresetMappings(cfg)

	if debug {
		slog.Info("Base preset", "player", m.PlayerID, "preset", m.BasePresetTag, "layout", layout)
		slog.Info("Overrides", "player", m.PlayerID, "layout", m.MappingOverrides)
	}

	layout.MergeUnboundMappings(cfg, m.MappingOverrides)
	if debug {
		slog.Info("Merge unbound", "player", m.PlayerID, "layout", layout)
	}

	layout.ApplyUnboundMappings(cfg)
	if debug {
		slog.Info("Apply unbound", "player", m.PlayerID, "layout", layout)
	}

	layout.MergeMappings(cfg, m.MappingOverrides)
	if debug {
		slog.Info("Merge overrides", "player", m.PlayerID, "layout", layout)
	}

	return layout
}

// Apply pushes the merged layout into the input system of c.
func (m *PlayerInputMappings) Apply(cfg Config, c inputmap.Controller) {
	if c == nil {
		slog.Warn("apply mappings: no controller", "player", m.PlayerID)
		return
	}
	m.BuildMergedMappingLayout(cfg, false).Apply(cfg, c)
}
