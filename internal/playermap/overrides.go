package playermap

import "github.com/llehouerou/inputremap/internal/inputmap"

// OverrideAction binds action in group groupIndex. The bindings it
// displaces, the previous binding of the action included, are recorded as
// unbound markers so they stay displaced on the next merge.
func (m *PlayerInputMappings) OverrideAction(cfg Config, action inputmap.ActionMapping, groupIndex int) {
	action.IsDefault = false

	merged := m.BuildMergedMappingLayout(cfg, false)
	displaced := merged.ReplaceAction(cfg, action, groupIndex, false)

	m.MappingOverrides.MergeUnboundMappings(cfg, displaced.ToUnboundMappings())
	m.MappingOverrides.ReplaceAction(cfg, action, groupIndex, false)
}

// OverrideAxis binds axis in group groupIndex, recording the displaced
// bindings like OverrideAction.
func (m *PlayerInputMappings) OverrideAxis(cfg Config, axis inputmap.AxisMapping, groupIndex int) {
	axis.IsDefault = false

	merged := m.BuildMergedMappingLayout(cfg, false)
	displaced := merged.ReplaceAxis(cfg, axis, groupIndex, false)

	m.MappingOverrides.MergeUnboundMappings(cfg, displaced.ToUnboundMappings())
	m.MappingOverrides.ReplaceAxis(cfg, axis, groupIndex, false)
}

// UnbindAction removes the effective bindings of name in keyGroup from
// group groupIndex. It reports false when nothing was bound.
func (m *PlayerInputMappings) UnbindAction(cfg Config, name string, groupIndex int, keyGroup string) bool {
	merged := m.BuildMergedMappingLayout(cfg, false)
	g, ok := merged.GroupAt(groupIndex)
	if !ok {
		return false
	}
	bound := g.AllActions(cfg, name, keyGroup)
	if len(bound) == 0 {
		return false
	}

	var markers inputmap.MappingLayout
	markers.Group(groupIndex).UnboundActions = bound
	m.MappingOverrides.MergeUnboundMappings(cfg, markers)
	return true
}

// UnbindAxis removes the effective axis bindings matching q from group
// groupIndex. It reports false when nothing was bound.
func (m *PlayerInputMappings) UnbindAxis(cfg Config, q inputmap.AxisQuery, groupIndex int) bool {
	merged := m.BuildMergedMappingLayout(cfg, false)
	g, ok := merged.GroupAt(groupIndex)
	if !ok {
		return false
	}
	bound := g.AllAxes(cfg, q)
	if len(bound) == 0 {
		return false
	}

	var markers inputmap.MappingLayout
	markers.Group(groupIndex).UnboundAxes = bound
	m.MappingOverrides.MergeUnboundMappings(cfg, markers)
	return true
}

// ResetAction drops the overrides and markers of name in keyGroup from
// group groupIndex, restoring the preset binding.
func (m *PlayerInputMappings) ResetAction(cfg Config, name string, groupIndex int, keyGroup string) {
	if !m.MappingOverrides.HasGroup(groupIndex) {
		return
	}
	m.MappingOverrides.RemoveAction(cfg, name, groupIndex, keyGroup, false)
	m.MappingOverrides.RemoveAction(cfg, name, groupIndex, keyGroup, true)
}

// ResetAxis drops the overrides and markers matching q from group
// groupIndex, restoring the preset binding.
func (m *PlayerInputMappings) ResetAxis(cfg Config, q inputmap.AxisQuery, groupIndex int) {
	if !m.MappingOverrides.HasGroup(groupIndex) {
		return
	}
	m.MappingOverrides.RemoveAxis(cfg, q, groupIndex, false)
	m.MappingOverrides.RemoveAxis(cfg, q, groupIndex, true)
}

// ResetOverrides drops every override.
func (m *PlayerInputMappings) ResetOverrides() {
	m.MappingOverrides = inputmap.MappingLayout{}
}

// SetBasePreset switches the player to preset tag. Overrides are dropped
// unless keepOverrides is set.
func (m *PlayerInputMappings) SetBasePreset(tag string, keepOverrides bool) {
	m.BasePresetTag = tag
	if !keepOverrides {
		m.ResetOverrides()
	}
}

// ConsolidateDefaultChanges refreshes the default-flagged overrides from the
// base preset and drops the overrides the preset now binds identically.
func (m *PlayerInputMappings) ConsolidateDefaultChanges(cfg Config) {
	base := m.BasePresetMappings(cfg)
	m.MappingOverrides.ConsolidateDefaultChanges(cfg, base)
	m.MappingOverrides.RemoveRedundantMappings(base)
}
