package inputmap

import "slices"

// MappingGroup is one binding slot: live action and axis mappings plus
// unbound markers. An unbound marker erases the matching binding (same name,
// key group and, for axes, scale) from a merged layout; its key is only used
// to derive the key group.
type MappingGroup struct {
	Actions        []ActionMapping
	Axes           []AxisMapping
	UnboundActions []ActionMapping
	UnboundAxes    []AxisMapping
}

// Clone returns a copy that shares no backing arrays with g.
func (g MappingGroup) Clone() MappingGroup {
	return MappingGroup{
		Actions:        slices.Clone(g.Actions),
		Axes:           slices.Clone(g.Axes),
		UnboundActions: slices.Clone(g.UnboundActions),
		UnboundAxes:    slices.Clone(g.UnboundAxes),
	}
}

// IsEmpty reports whether the group holds neither mappings nor markers.
func (g MappingGroup) IsEmpty() bool {
	return g.NumInputDefinitions() == 0
}

// NumInputDefinitions counts live mappings and unbound markers.
func (g MappingGroup) NumInputDefinitions() int {
	return len(g.Actions) + len(g.Axes) + len(g.UnboundActions) + len(g.UnboundAxes)
}

// Append adds every mapping and marker of other to g.
func (g *MappingGroup) Append(other MappingGroup) {
	g.Actions = append(g.Actions, other.Actions...)
	g.Axes = append(g.Axes, other.Axes...)
	g.UnboundActions = append(g.UnboundActions, other.UnboundActions...)
	g.UnboundAxes = append(g.UnboundAxes, other.UnboundAxes...)
}

// AllActions returns the live action mappings named name whose key belongs
// to keyGroup.
func (g MappingGroup) AllActions(p Policy, name, keyGroup string) []ActionMapping {
	var result []ActionMapping
	for _, m := range g.Actions {
		if m.Name == name && keyGroupMatches(keyGroup, p.KeyGroup(m.Key)) {
			result = append(result, m)
		}
	}
	return result
}

// Action returns the first live action mapping matching name and keyGroup.
func (g MappingGroup) Action(p Policy, name, keyGroup string) (ActionMapping, bool) {
	for _, m := range g.Actions {
		if m.Name == name && keyGroupMatches(keyGroup, p.KeyGroup(m.Key)) {
			return m, true
		}
	}
	return ActionMapping{}, false
}

// AllAxes returns the live axis mappings matching q.
func (g MappingGroup) AllAxes(p Policy, q AxisQuery) []AxisMapping {
	var result []AxisMapping
	for _, m := range g.Axes {
		if q.matches(p, m) {
			result = append(result, m)
		}
	}
	return result
}

// Axis returns the first live axis mapping matching q.
func (g MappingGroup) Axis(p Policy, q AxisQuery) (AxisMapping, bool) {
	for _, m := range g.Axes {
		if q.matches(p, m) {
			return m, true
		}
	}
	return AxisMapping{}, false
}

// ReplaceAction removes the action mappings colliding with m and appends m.
// Collisions are mappings with the same name in the key group of m, or in
// any key group when anyKeyGroup is set. The removed mappings are returned
// so the caller can place them elsewhere.
func (g *MappingGroup) ReplaceAction(p Policy, m ActionMapping, anyKeyGroup bool) MappingGroup {
	keyGroup := AnyKeyGroup
	if !anyKeyGroup {
		keyGroup = p.KeyGroup(m.Key)
	}

	var removed MappingGroup
	g.Actions = slices.DeleteFunc(g.Actions, func(existing ActionMapping) bool {
		if existing.Name == m.Name && keyGroupMatches(keyGroup, p.KeyGroup(existing.Key)) {
			removed.Actions = append(removed.Actions, existing)
			return true
		}
		return false
	})
	g.Actions = append(g.Actions, m)
	return removed
}

// ReplaceAxis removes the axis mappings colliding with m and appends m. If m
// is on an axis key every scale of the axis collides, otherwise only the
// mappings with the same scale do.
func (g *MappingGroup) ReplaceAxis(p Policy, m AxisMapping, anyKeyGroup bool) MappingGroup {
	keyGroup := AnyKeyGroup
	if !anyKeyGroup {
		keyGroup = p.KeyGroup(m.Key)
	}
	q := axisQueryFor(p, m, keyGroup)

	var removed MappingGroup
	g.Axes = slices.DeleteFunc(g.Axes, func(existing AxisMapping) bool {
		if q.matches(p, existing) {
			removed.Axes = append(removed.Axes, existing)
			return true
		}
		return false
	})
	g.Axes = append(g.Axes, m)
	return removed
}

// UnbindChord removes every live mapping bound to chord and returns them.
// Axis mappings have no modifiers, so they only match unmodified chords.
func (g *MappingGroup) UnbindChord(chord Chord) MappingGroup {
	var removed MappingGroup
	g.Actions = slices.DeleteFunc(g.Actions, func(m ActionMapping) bool {
		if m.Chord == chord {
			removed.Actions = append(removed.Actions, m)
			return true
		}
		return false
	})
	if !chord.Modifiers.IsZero() {
		return removed
	}
	g.Axes = slices.DeleteFunc(g.Axes, func(m AxisMapping) bool {
		if m.Key == chord.Key {
			removed.Axes = append(removed.Axes, m)
			return true
		}
		return false
	})
	return removed
}

// RemoveAction removes the live action mappings matching name and keyGroup,
// or the matching unbound markers when fromUnbound is set.
func (g *MappingGroup) RemoveAction(p Policy, name, keyGroup string, fromUnbound bool) {
	target := &g.Actions
	if fromUnbound {
		target = &g.UnboundActions
	}
	*target = slices.DeleteFunc(*target, func(m ActionMapping) bool {
		return m.Name == name && keyGroupMatches(keyGroup, p.KeyGroup(m.Key))
	})
}

// RemoveAxis removes the live axis mappings matching q, or the matching
// unbound markers when fromUnbound is set.
func (g *MappingGroup) RemoveAxis(p Policy, q AxisQuery, fromUnbound bool) {
	target := &g.Axes
	if fromUnbound {
		target = &g.UnboundAxes
	}
	*target = slices.DeleteFunc(*target, func(m AxisMapping) bool {
		return q.matches(p, m)
	})
}

// FindUnboundMappings returns, as unbound markers, the mappings of other
// that have no counterpart in g.
func (g MappingGroup) FindUnboundMappings(p Policy, other MappingGroup) MappingGroup {
	var result MappingGroup
	for _, m := range other.Actions {
		if len(g.AllActions(p, m.Name, p.KeyGroup(m.Key))) == 0 {
			result.UnboundActions = append(result.UnboundActions, m)
		}
	}
	for _, m := range other.Axes {
		if len(g.AllAxes(p, axisQueryFor(p, m, p.KeyGroup(m.Key)))) == 0 {
			result.UnboundAxes = append(result.UnboundAxes, m)
		}
	}
	return result
}

// ToUnboundMappings returns a group whose unbound markers are the live
// mappings of g.
func (g MappingGroup) ToUnboundMappings() MappingGroup {
	return MappingGroup{
		UnboundActions: slices.Clone(g.Actions),
		UnboundAxes:    slices.Clone(g.Axes),
	}
}

// RemoveUnboundMappings drops every unbound marker.
func (g *MappingGroup) RemoveUnboundMappings() {
	g.UnboundActions = nil
	g.UnboundAxes = nil
}

// RemoveRedundantMappings drops the live mappings that base already binds
// identically.
func (g *MappingGroup) RemoveRedundantMappings(base MappingGroup) {
	g.Actions = slices.DeleteFunc(g.Actions, func(m ActionMapping) bool {
		return slices.ContainsFunc(base.Actions, m.sameBinding)
	})
	g.Axes = slices.DeleteFunc(g.Axes, func(m AxisMapping) bool {
		return slices.ContainsFunc(base.Axes, m.sameBinding)
	})
}

// MarkAllMappingsDefault flags every live mapping as a default.
func (g *MappingGroup) MarkAllMappingsDefault() {
	for i := range g.Actions {
		g.Actions[i].IsDefault = true
	}
	for i := range g.Axes {
		g.Axes[i].IsDefault = true
	}
}
