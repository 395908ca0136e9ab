// Package layoutview renders mapping layouts for the terminal.
package layoutview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/inputremap/internal/inputmap"
)

// Styles contains the lipgloss styles used when rendering a layout.
type Styles struct {
	Title   lipgloss.Style // Bold, bright
	Group   lipgloss.Style // Group headings
	Binding lipgloss.Style // Customized bindings
	Default lipgloss.Style // Bindings taken from a preset
	Unbound lipgloss.Style // Unbound markers
	Subtle  lipgloss.Style // Very dim text
}

var (
	colorPrimary  = lipgloss.Color("#a78bfa")
	colorFgBase   = lipgloss.Color("#c0c0c0")
	colorFgMuted  = lipgloss.Color("#808080")
	colorFgSubtle = lipgloss.Color("#585858")
	colorError    = lipgloss.Color("#f87171")
)

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorFgBase),
		Group:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Binding: lipgloss.NewStyle().Foreground(colorFgBase),
		Default: lipgloss.NewStyle().Foreground(colorFgMuted),
		Unbound: lipgloss.NewStyle().Foreground(colorError).Strikethrough(true),
		Subtle:  lipgloss.NewStyle().Foreground(colorFgSubtle),
	}
}

// Render draws every group of l, its bindings first and its unbound markers
// last.
func Render(title string, l inputmap.MappingLayout, s Styles) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render(title))
	sb.WriteString("\n")

	if len(l.Groups) == 0 {
		sb.WriteString("  ")
		sb.WriteString(s.Subtle.Render("No mappings"))
		sb.WriteString("\n")
	}

	for i, g := range l.Groups {
		sb.WriteString("\n")
		sb.WriteString(s.Group.Render(fmt.Sprintf("Group %d", i)))
		sb.WriteString(" ")
		sb.WriteString(s.Subtle.Render(english.Plural(g.NumInputDefinitions(), "entry", "entries")))
		sb.WriteString("\n")

		if g.IsEmpty() {
			sb.WriteString("  ")
			sb.WriteString(s.Subtle.Render("Empty"))
			sb.WriteString("\n")
			continue
		}

		for _, m := range g.Actions {
			writeBinding(&sb, m.Name+": "+m.Chord.String(), m.IsDefault, s)
		}
		for _, m := range g.Axes {
			writeBinding(&sb, axisLabel(m), m.IsDefault, s)
		}
		for _, m := range g.UnboundActions {
			writeUnbound(&sb, m.Name+": "+m.Chord.String(), s)
		}
		for _, m := range g.UnboundAxes {
			writeUnbound(&sb, axisLabel(m), s)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 40))
	sb.WriteString("\n")
	sb.WriteString(s.Title.Render(Summary(l)))

	return sb.String()
}

// Summary counts the groups, bindings and unbound markers of l.
func Summary(l inputmap.MappingLayout) string {
	var bindings, defaults, unbound int
	for _, g := range l.Groups {
		bindings += len(g.Actions) + len(g.Axes)
		unbound += len(g.UnboundActions) + len(g.UnboundAxes)
		for _, m := range g.Actions {
			if m.IsDefault {
				defaults++
			}
		}
		for _, m := range g.Axes {
			if m.IsDefault {
				defaults++
			}
		}
	}

	return fmt.Sprintf("Total: %s, %s %s, %s default, %s unbound",
		english.Plural(len(l.Groups), "group", ""),
		humanize.Comma(int64(bindings)),
		english.PluralWord(bindings, "binding", ""),
		humanize.Comma(int64(defaults)),
		humanize.Comma(int64(unbound)),
	)
}

func writeBinding(sb *strings.Builder, label string, isDefault bool, s Styles) {
	sb.WriteString("  • ")
	if isDefault {
		sb.WriteString(s.Default.Render(label + " (default)"))
	} else {
		sb.WriteString(s.Binding.Render(label))
	}
	sb.WriteString("\n")
}

func writeUnbound(sb *strings.Builder, label string, s Styles) {
	sb.WriteString("  ✗ ")
	sb.WriteString(s.Unbound.Render(label))
	sb.WriteString("\n")
}

func axisLabel(m inputmap.AxisMapping) string {
	// the mapping's own String carries the default flag
	m.IsDefault = false
	return m.String()
}
