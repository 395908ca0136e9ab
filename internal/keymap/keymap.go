// Package keymap provides an in-memory input system: the live action and
// axis tables of a player plus the key lookups rebuilt from them.
package keymap

import (
	"slices"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// InputSystem holds the live mapping tables of one player.
type InputSystem struct {
	actions  []inputmap.ActionMapping
	axes     []inputmap.AxisMapping
	resolver *Resolver
	rebuilds int
}

// NewInputSystem creates an input system with the given tables and builds
// its lookups.
func NewInputSystem(actions []inputmap.ActionMapping, axes []inputmap.AxisMapping) *InputSystem {
	s := &InputSystem{}
	s.SetMappings(actions, axes)
	s.Rebuild()
	return s
}

// ActionMappings returns a copy of the live action table.
func (s *InputSystem) ActionMappings() []inputmap.ActionMapping {
	return slices.Clone(s.actions)
}

// AxisMappings returns a copy of the live axis table.
func (s *InputSystem) AxisMappings() []inputmap.AxisMapping {
	return slices.Clone(s.axes)
}

// SetMappings replaces both tables. Lookups keep answering from the old
// tables until Rebuild is called.
func (s *InputSystem) SetMappings(actions []inputmap.ActionMapping, axes []inputmap.AxisMapping) {
	s.actions = slices.Clone(actions)
	s.axes = slices.Clone(axes)
}

// Rebuild recreates the key lookups from the current tables.
func (s *InputSystem) Rebuild() {
	s.resolver = NewResolver(s.actions, s.axes)
	s.rebuilds++
}

// Resolver returns the lookups built by the last Rebuild.
func (s *InputSystem) Resolver() *Resolver {
	if s.resolver == nil {
		return NewResolver(nil, nil)
	}
	return s.resolver
}

// Rebuilds returns how many times the lookups were rebuilt.
func (s *InputSystem) Rebuilds() int {
	return s.rebuilds
}

// Player is a controller whose input system exists once the player is
// spawned.
type Player struct {
	ID    string
	Input *InputSystem
}

// InputSystem implements inputmap.Controller.
func (p *Player) InputSystem() (inputmap.InputSystem, bool) {
	if p == nil || p.Input == nil {
		return nil, false
	}
	return p.Input, true
}

var _ inputmap.Controller = (*Player)(nil)
