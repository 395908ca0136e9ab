package playermap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

func TestMigrateLegacy_PlayerIndex(t *testing.T) {
	cfg := newConfig()
	index := 2

	tests := []struct {
		name     string
		playerID string
		index    *int
		wantID   string
		want     bool
	}{
		{name: "index becomes id", index: &index, wantID: "2", want: true},
		{name: "id already set", playerID: "p1", index: &index, wantID: "p1", want: false},
		{name: "no index", wantID: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(cfg, tt.playerID, "default")
			m.Legacy.PlayerIndex = tt.index

			got := m.MigrateLegacy(cfg)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantID, m.PlayerID)
			if tt.want {
				assert.Nil(t, m.Legacy.PlayerIndex)
			}
		})
	}
}

func TestMigrateLegacy_FlatLayoutBecomesOverrides(t *testing.T) {
	cfg := newConfig()

	edited := New(cfg, "p1", "default")
	edited.OverrideAction(cfg, act("Jump", "Enter"), 0)
	edited.UnbindAction(cfg, "Fire", 0, "keyboard")
	edited.OverrideAxis(cfg, axis("MoveX", "Left", -1), 0)
	flat := edited.BuildMergedMappingLayout(cfg, false)

	m := PlayerInputMappings{PlayerID: "p1"}
	m.Legacy.Preset = LegacyPreset{PresetTag: "default", MappingGroups: flat}

	require.True(t, m.MigrateLegacy(cfg))

	assert.Equal(t, "default", m.BasePresetTag)
	assert.Equal(t, LegacyPreset{}, m.Legacy.Preset)
	assert.Equal(t, bindings(flat), bindings(m.BuildMergedMappingLayout(cfg, false)))

	for _, g := range m.MappingOverrides.Groups {
		for _, a := range g.Actions {
			assert.False(t, a.IsDefault, "preset bindings are not kept as overrides: %s", a)
		}
	}
}

func TestMigrateLegacy_KeepsExistingOverrides(t *testing.T) {
	cfg := newConfig()
	m := New(cfg, "p1", "default")
	m.OverrideAction(cfg, act("Jump", "Enter"), 0)
	before := m.MappingOverrides.Clone()

	m.Legacy.Preset = LegacyPreset{
		PresetTag:     "empty",
		MappingGroups: inputmap.NewMappingLayout(inputmap.MappingGroup{Actions: []inputmap.ActionMapping{act("Jump", "J")}}),
	}

	assert.False(t, m.MigrateLegacy(cfg))
	assert.Equal(t, "default", m.BasePresetTag)
	assert.Equal(t, before, m.MappingOverrides)
}

func TestMigrateLegacy_UnknownPreset(t *testing.T) {
	cfg := newConfig()
	m := PlayerInputMappings{PlayerID: "p1"}
	m.Legacy.Preset = LegacyPreset{
		PresetTag:     "missing",
		MappingGroups: inputmap.NewMappingLayout(inputmap.MappingGroup{Actions: []inputmap.ActionMapping{act("Jump", "J")}}),
	}

	require.True(t, m.MigrateLegacy(cfg))
	assert.Equal(t, []string{"Jump: J"}, bindings(m.BuildMergedMappingLayout(cfg, false)))
}
