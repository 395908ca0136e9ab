package config

import (
	"slices"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// KeyGroup returns the tag of the first key group matching key.
func (c *Config) KeyGroup(key inputmap.Key) string {
	if !key.IsValid() {
		return ""
	}
	for _, g := range c.KeyGroups {
		if matchesAny(g.Keys, key) {
			return g.Tag
		}
	}
	return ""
}

// IsAxisKey reports whether key matches one of the axis key patterns.
func (c *Config) IsAxisKey(key inputmap.Key) bool {
	return key.IsValid() && matchesAny(c.AxisKeys, key)
}

func (c *Config) AllowMultipleBindingsPerKey() bool {
	return c.MultipleBindingsPerKey
}

// UniqueBetweenGroups reports whether bindings of two mapping groups must not
// share keys: always within one group, and between linked groups.
func (c *Config) UniqueBetweenGroups(source, target int) bool {
	if source == target {
		return true
	}
	for _, link := range c.MappingGroupLinks {
		if slices.Contains(link, source) && slices.Contains(link, target) {
			return true
		}
	}
	return false
}

func (c *Config) IsPreservedAction(name string) bool {
	return slices.Contains(c.PreservedActions, name)
}

func (c *Config) IsPreservedAxis(name string) bool {
	return slices.Contains(c.PreservedAxes, name)
}

// DefaultKeyGroup returns the tag of the first key group.
func (c *Config) DefaultKeyGroup() string {
	if len(c.KeyGroups) == 0 {
		return ""
	}
	return c.KeyGroups[0].Tag
}

// Verify Config implements Policy at compile time.
var _ inputmap.Policy = (*Config)(nil)
