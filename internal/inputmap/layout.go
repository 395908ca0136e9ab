package inputmap

// MappingLayout is an ordered list of mapping groups. A group index names the
// same binding slot in every layout, so presets and overrides merge index by
// index. Mutating methods grow the layout with empty groups as needed; it
// never shrinks on its own.
type MappingLayout struct {
	Groups []MappingGroup
}

// NewMappingLayout returns a layout holding copies of groups.
func NewMappingLayout(groups ...MappingGroup) MappingLayout {
	l := MappingLayout{Groups: make([]MappingGroup, 0, len(groups))}
	for _, g := range groups {
		l.Groups = append(l.Groups, g.Clone())
	}
	return l
}

// Clone returns a copy that shares no backing arrays with l.
func (l MappingLayout) Clone() MappingLayout {
	return NewMappingLayout(l.Groups...)
}

// HasGroup reports whether group index i exists.
func (l MappingLayout) HasGroup(i int) bool {
	return i >= 0 && i < len(l.Groups)
}

// GroupAt returns group i, or false when it does not exist.
func (l MappingLayout) GroupAt(i int) (MappingGroup, bool) {
	if !l.HasGroup(i) {
		return MappingGroup{}, false
	}
	return l.Groups[i], true
}

// Group returns group i, appending empty groups until it exists. Negative
// indices address group 0.
func (l *MappingLayout) Group(i int) *MappingGroup {
	if i < 0 {
		i = 0
	}
	if i >= len(l.Groups) {
		l.Groups = append(l.Groups, make([]MappingGroup, i-len(l.Groups)+1)...)
	}
	return &l.Groups[i]
}

// NumInputDefinitions counts mappings and markers over all groups.
func (l MappingLayout) NumInputDefinitions() int {
	n := 0
	for _, g := range l.Groups {
		n += g.NumInputDefinitions()
	}
	return n
}

// Actions returns the live action mappings of every group, in group order.
func (l MappingLayout) Actions() []ActionMapping {
	var result []ActionMapping
	for _, g := range l.Groups {
		result = append(result, g.Actions...)
	}
	return result
}

// Axes returns the live axis mappings of every group, in group order.
func (l MappingLayout) Axes() []AxisMapping {
	var result []AxisMapping
	for _, g := range l.Groups {
		result = append(result, g.Axes...)
	}
	return result
}

// SetMappings rebuilds the layout from flat lists. Each mapping goes to the
// first group that has no colliding mapping, or to a new group.
func (l *MappingLayout) SetMappings(p Policy, actions []ActionMapping, axes []AxisMapping) {
	l.Groups = nil

	for _, m := range actions {
		placed := false
		for i := range l.Groups {
			if len(l.Groups[i].AllActions(p, m.Name, p.KeyGroup(m.Key))) == 0 {
				l.Groups[i].Actions = append(l.Groups[i].Actions, m)
				placed = true
				break
			}
		}
		if !placed {
			l.Groups = append(l.Groups, MappingGroup{Actions: []ActionMapping{m}})
		}
	}

	for _, m := range axes {
		q := axisQueryFor(p, m, p.KeyGroup(m.Key))
		placed := false
		for i := range l.Groups {
			if len(l.Groups[i].AllAxes(p, q)) == 0 {
				l.Groups[i].Axes = append(l.Groups[i].Axes, m)
				placed = true
				break
			}
		}
		if !placed {
			l.Groups = append(l.Groups, MappingGroup{Axes: []AxisMapping{m}})
		}
	}
}

// MappingGroupsToUnbind returns the indices of the groups a key bound in
// group source must be removed from.
func (l MappingLayout) MappingGroupsToUnbind(p Policy, source int) []int {
	var result []int
	for i := range l.Groups {
		if p.UniqueBetweenGroups(source, i) {
			result = append(result, i)
		}
	}
	return result
}

// ReplaceAction binds m in group groupIndex (group 0 when negative). When
// the policy forbids several bindings per key, the chord of m is first
// unbound from every group that must stay unique with groupIndex. The
// returned layout holds everything displaced, at its original group index.
func (l *MappingLayout) ReplaceAction(p Policy, m ActionMapping, groupIndex int, anyKeyGroup bool) MappingLayout {
	if groupIndex < 0 {
		groupIndex = 0
	}

	var displaced MappingLayout
	// Several mappings may sit on an invalid key; those never collide.
	if m.Key.IsValid() && !p.AllowMultipleBindingsPerKey() {
		displaced = l.UnbindChord(m.Chord, l.MappingGroupsToUnbind(p, groupIndex))
	}

	displaced.Group(groupIndex).Append(l.Group(groupIndex).ReplaceAction(p, m, anyKeyGroup))
	return displaced
}

// ReplaceAxis is the axis counterpart of ReplaceAction.
func (l *MappingLayout) ReplaceAxis(p Policy, m AxisMapping, groupIndex int, anyKeyGroup bool) MappingLayout {
	if groupIndex < 0 {
		groupIndex = 0
	}

	var displaced MappingLayout
	if m.Key.IsValid() && !p.AllowMultipleBindingsPerKey() {
		displaced = l.UnbindChord(Chord{Key: m.Key}, l.MappingGroupsToUnbind(p, groupIndex))
	}

	displaced.Group(groupIndex).Append(l.Group(groupIndex).ReplaceAxis(p, m, anyKeyGroup))
	return displaced
}

// UnbindChord unbinds chord from the listed groups and returns the removed
// mappings at their group index. Indices past the end of l are skipped.
func (l *MappingLayout) UnbindChord(chord Chord, groupIndices []int) MappingLayout {
	var removed MappingLayout
	for _, i := range groupIndices {
		if !l.HasGroup(i) {
			continue
		}
		removed.Group(i).Append(l.Groups[i].UnbindChord(chord))
	}
	return removed
}

// RemoveAction removes matching action mappings (or markers) from group
// groupIndex.
func (l *MappingLayout) RemoveAction(p Policy, name string, groupIndex int, keyGroup string, fromUnbound bool) {
	l.Group(groupIndex).RemoveAction(p, name, keyGroup, fromUnbound)
}

// RemoveAxis removes matching axis mappings (or markers) from group
// groupIndex.
func (l *MappingLayout) RemoveAxis(p Policy, q AxisQuery, groupIndex int, fromUnbound bool) {
	l.Group(groupIndex).RemoveAxis(p, q, fromUnbound)
}

// FindUnboundMappings returns, as unbound markers, every mapping of source
// that l does not bind in the same group. Groups missing from l are
// entirely unbound.
func (l MappingLayout) FindUnboundMappings(p Policy, source MappingLayout) MappingLayout {
	var result MappingLayout
	for i, sourceGroup := range source.Groups {
		if g, ok := l.GroupAt(i); ok {
			*result.Group(i) = g.FindUnboundMappings(p, sourceGroup)
		} else {
			*result.Group(i) = sourceGroup.ToUnboundMappings()
		}
	}
	return result
}

// MergeMappings applies every live mapping of overrides as a replacement in
// the group with the same index. Mappings displaced by the replacements are
// dropped. It returns l for chaining.
func (l *MappingLayout) MergeMappings(p Policy, overrides MappingLayout) *MappingLayout {
	for i, g := range overrides.Groups {
		for _, m := range g.Actions {
			l.ReplaceAction(p, m, i, false)
		}
		for _, m := range g.Axes {
			l.ReplaceAxis(p, m, i, false)
		}
	}
	return l
}

// MergeUnboundMappings copies the unbound markers of overrides into l. The
// live mappings a marker erases are removed right away, and an older marker
// for the same binding is replaced. It returns l for chaining.
func (l *MappingLayout) MergeUnboundMappings(p Policy, overrides MappingLayout) *MappingLayout {
	for i, g := range overrides.Groups {
		for _, marker := range g.UnboundActions {
			keyGroup := p.KeyGroup(marker.Key)
			l.RemoveAction(p, marker.Name, i, keyGroup, false)
			l.RemoveAction(p, marker.Name, i, keyGroup, true)
			dst := l.Group(i)
			dst.UnboundActions = append(dst.UnboundActions, marker)
		}
		for _, marker := range g.UnboundAxes {
			q := axisQueryFor(p, marker, p.KeyGroup(marker.Key))
			l.RemoveAxis(p, q, i, false)
			// A marker on a regular key leaves axis key markers in place:
			// those still erase the other scales.
			q.SkipAxisKeys = !q.AnyScale
			l.RemoveAxis(p, q, i, true)
			dst := l.Group(i)
			dst.UnboundAxes = append(dst.UnboundAxes, marker)
		}
	}
	return l
}

// ApplyUnboundMappings removes the live mappings erased by the unbound
// markers of each group, then drops the markers.
func (l *MappingLayout) ApplyUnboundMappings(p Policy) {
	for i := range l.Groups {
		g := &l.Groups[i]
		for _, marker := range g.UnboundActions {
			g.RemoveAction(p, marker.Name, p.KeyGroup(marker.Key), false)
		}
		for _, marker := range g.UnboundAxes {
			g.RemoveAxis(p, axisQueryFor(p, marker, p.KeyGroup(marker.Key)), false)
		}
		g.RemoveUnboundMappings()
	}
}

// ToUnboundMappings returns a layout whose markers are the live mappings of
// l.
func (l MappingLayout) ToUnboundMappings() MappingLayout {
	result := MappingLayout{Groups: make([]MappingGroup, 0, len(l.Groups))}
	for _, g := range l.Groups {
		result.Groups = append(result.Groups, g.ToUnboundMappings())
	}
	return result
}

// RemoveUnboundMappings drops the markers of every group.
func (l *MappingLayout) RemoveUnboundMappings() {
	for i := range l.Groups {
		l.Groups[i].RemoveUnboundMappings()
	}
}

// RemoveRedundantMappings drops the live mappings that base binds
// identically in the same group.
func (l *MappingLayout) RemoveRedundantMappings(base MappingLayout) {
	for i := range l.Groups {
		if g, ok := base.GroupAt(i); ok {
			l.Groups[i].RemoveRedundantMappings(g)
		}
	}
}

// MarkAllMappingsDefault flags every live mapping as a default.
func (l *MappingLayout) MarkAllMappingsDefault() {
	for i := range l.Groups {
		l.Groups[i].MarkAllMappingsDefault()
	}
}

// ConsolidateDefaultChanges refreshes the mappings flagged as default from
// base, so changes to a preset reach players who never customized them.
// A default mapping that base no longer binds is removed. Customized
// mappings are left alone.
func (l *MappingLayout) ConsolidateDefaultChanges(p Policy, base MappingLayout) {
	for i := range l.Groups {
		baseGroup, _ := base.GroupAt(i)
		g := &l.Groups[i]

		actions := g.Actions[:0]
		for _, m := range g.Actions {
			if m.IsDefault {
				def, ok := baseGroup.Action(p, m.Name, p.KeyGroup(m.Key))
				if !ok {
					continue
				}
				m = def
				m.IsDefault = true
			}
			actions = append(actions, m)
		}
		clear(g.Actions[len(actions):])
		g.Actions = actions

		axes := g.Axes[:0]
		for _, m := range g.Axes {
			if m.IsDefault {
				def, ok := baseGroup.Axis(p, axisQueryFor(p, m, p.KeyGroup(m.Key)))
				if !ok {
					continue
				}
				m = def
				m.IsDefault = true
			}
			axes = append(axes, m)
		}
		clear(g.Axes[len(axes):])
		g.Axes = axes
	}
}

// ReconstructOverrides recovers the overrides that turn preset into flat:
// unbound markers for the preset mappings flat no longer binds, plus the
// mappings of flat that preset does not already bind identically.
func ReconstructOverrides(p Policy, flat, preset MappingLayout) MappingLayout {
	overrides := flat.FindUnboundMappings(p, preset)
	overrides.MergeMappings(p, flat)
	overrides.RemoveRedundantMappings(preset)
	return overrides
}
