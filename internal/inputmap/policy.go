package inputmap

// AnyKeyGroup is a key group query that matches every key group.
const AnyKeyGroup = "*"

// Policy classifies keys and decides binding uniqueness. It is read-only for
// the duration of any layout operation.
type Policy interface {
	// KeyGroup returns the key group of a key, or "" for ungrouped keys.
	KeyGroup(key Key) string
	// IsAxisKey reports whether a key reports both axis directions itself,
	// like a gamepad stick.
	IsAxisKey(key Key) bool
	AllowMultipleBindingsPerKey() bool
	// UniqueBetweenGroups reports whether a key bound in mapping group source
	// must be unbound from mapping group target.
	UniqueBetweenGroups(source, target int) bool
	IsPreservedAction(name string) bool
	IsPreservedAxis(name string) bool
}

func keyGroupMatches(query, keyGroup string) bool {
	return query == AnyKeyGroup || query == keyGroup
}

// AxisQuery selects axis mappings by name, key group and scale.
type AxisQuery struct {
	Name     string
	Scale    float64
	KeyGroup string
	// AnyScale matches every scale. Used for axis keys, which cover both
	// directions with one binding.
	AnyScale bool
	// SkipAxisKeys leaves mappings on axis keys alone.
	SkipAxisKeys bool
}

func (q AxisQuery) matches(p Policy, m AxisMapping) bool {
	if m.Name != q.Name {
		return false
	}
	if !q.AnyScale && m.Scale != q.Scale {
		return false
	}
	if !keyGroupMatches(q.KeyGroup, p.KeyGroup(m.Key)) {
		return false
	}
	return !q.SkipAxisKeys || !p.IsAxisKey(m.Key)
}

// axisQueryFor builds the query that collides with m.
func axisQueryFor(p Policy, m AxisMapping, keyGroup string) AxisQuery {
	return AxisQuery{
		Name:     m.Name,
		Scale:    m.Scale,
		KeyGroup: keyGroup,
		AnyScale: p.IsAxisKey(m.Key),
	}
}
