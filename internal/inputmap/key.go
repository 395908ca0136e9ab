// Package inputmap implements layered key binding layouts: mapping groups,
// the layouts built from them, and the merge engine that reconciles a base
// preset with a player's overrides.
package inputmap

import (
	"errors"
	"fmt"
	"strings"
)

// Key names a physical key, e.g. "SpaceBar" or "Gamepad_LeftX".
type Key string

// KeyNone marks an empty binding slot.
const KeyNone Key = "None"

// IsValid reports whether the key refers to a physical key.
func (k Key) IsValid() bool {
	return k != "" && k != KeyNone
}

// Modifiers holds the modifier flags of a chord.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Cmd   bool
}

// IsZero reports whether no modifier is set.
func (m Modifiers) IsZero() bool {
	return m == Modifiers{}
}

// Chord is a key plus modifier flags. Two chords are equal when the key and
// every modifier flag are equal.
type Chord struct {
	Key Key
	Modifiers
}

// ErrEmptyChord is returned when parsing a chord without a key.
var ErrEmptyChord = errors.New("chord has no key")

// ParseChord parses chords written as "Shift+Ctrl+F". Modifier names are case
// insensitive; the last element is the key.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	key := strings.TrimSpace(parts[len(parts)-1])
	if key == "" {
		return Chord{}, fmt.Errorf("parse chord %q: %w", s, ErrEmptyChord)
	}

	c := Chord{Key: Key(key)}
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "shift":
			c.Shift = true
		case "ctrl", "control":
			c.Ctrl = true
		case "alt", "option":
			c.Alt = true
		case "cmd", "command", "meta", "super":
			c.Cmd = true
		default:
			return Chord{}, fmt.Errorf("parse chord %q: unknown modifier %q", s, mod)
		}
	}
	return c, nil
}

// String formats the chord the way ParseChord reads it.
func (c Chord) String() string {
	var b strings.Builder
	if c.Shift {
		b.WriteString("Shift+")
	}
	if c.Ctrl {
		b.WriteString("Ctrl+")
	}
	if c.Alt {
		b.WriteString("Alt+")
	}
	if c.Cmd {
		b.WriteString("Cmd+")
	}
	if c.Key == "" {
		b.WriteString(string(KeyNone))
	} else {
		b.WriteString(string(c.Key))
	}
	return b.String()
}
