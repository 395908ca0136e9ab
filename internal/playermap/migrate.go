package playermap

import (
	"strconv"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// MigrateLegacy converts the legacy state into the current one. A legacy
// player index becomes the player ID when none is set. A legacy flattened
// layout becomes overrides against its preset when the player has no
// overrides yet. It reports whether anything changed.
func (m *PlayerInputMappings) MigrateLegacy(cfg Config) bool {
	changed := false

	if m.Legacy.PlayerIndex != nil && *m.Legacy.PlayerIndex >= 0 && m.PlayerID == "" {
		m.PlayerID = strconv.Itoa(*m.Legacy.PlayerIndex)
		m.Legacy.PlayerIndex = nil
		changed = true
	}

	legacy := m.Legacy.Preset
	if len(legacy.MappingGroups.Groups) > 0 && m.MappingOverrides.NumInputDefinitions() == 0 {
		m.BasePresetTag = legacy.PresetTag
		m.MappingOverrides = inputmap.ReconstructOverrides(cfg, legacy.MappingGroups, m.BasePresetMappings(cfg))
		m.Legacy.Preset = LegacyPreset{}
		changed = true
	}

	return changed
}
