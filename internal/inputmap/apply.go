package inputmap

import (
	"log/slog"
	"slices"
)

// InputSystem is the live input subsystem of a player controller.
type InputSystem interface {
	ActionMappings() []ActionMapping
	AxisMappings() []AxisMapping
	// SetMappings replaces both mapping tables at once.
	SetMappings(actions []ActionMapping, axes []AxisMapping)
	// Rebuild refreshes the lookups derived from the mapping tables.
	Rebuild()
}

// Controller owns an input system. The input system may be missing, for
// instance before the controller is possessed.
type Controller interface {
	InputSystem() (InputSystem, bool)
}

// Apply replaces the mappings of the controller's input system with the
// system's mappings whose name the policy preserves followed by the live
// mappings of l. Mappings of l on an empty or None key are left out of that
// union, so a cleared slot never reaches the input system. Without an input
// system nothing happens.
func (l MappingLayout) Apply(p Policy, c Controller) {
	if c == nil {
		slog.Warn("input mappings not applied: no controller")
		return
	}
	in, ok := c.InputSystem()
	if !ok || in == nil {
		slog.Warn("input mappings not applied: controller has no input system")
		return
	}

	actions := slices.DeleteFunc(slices.Clone(in.ActionMappings()), func(m ActionMapping) bool {
		return !p.IsPreservedAction(m.Name)
	})
	for _, m := range l.Actions() {
		if m.Key.IsValid() {
			actions = append(actions, m)
		}
	}

	axes := slices.DeleteFunc(slices.Clone(in.AxisMappings()), func(m AxisMapping) bool {
		return !p.IsPreservedAxis(m.Name)
	})
	for _, m := range l.Axes() {
		if m.Key.IsValid() {
			axes = append(axes, m)
		}
	}

	in.SetMappings(actions, axes)
	in.Rebuild()
}
