package inputmap

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// WriteTo writes a nested, human-readable listing of the layout.
func (l MappingLayout) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString("Mapping Groups:\n")
	if len(l.Groups) == 0 {
		b.WriteString("    NONE\n")
	}
	for i, g := range l.Groups {
		fmt.Fprintf(&b, "    %d:\n", i)
		writeSection(&b, "Actions", g.Actions)
		writeSection(&b, "Axes", g.Axes)
		writeSection(&b, "Unbound Actions", g.UnboundActions)
		writeSection(&b, "Unbound Axes", g.UnboundAxes)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func writeSection[T fmt.Stringer](b *strings.Builder, title string, items []T) {
	fmt.Fprintf(b, "        %s:\n", title)
	if len(items) == 0 {
		b.WriteString("            NONE\n")
	}
	for i, m := range items {
		fmt.Fprintf(b, "            %d: %s\n", i, m)
	}
}

// String returns the WriteTo listing.
func (l MappingLayout) String() string {
	var b strings.Builder
	_, _ = l.WriteTo(&b)
	return b.String()
}

// LogValue renders the layout as nested slog groups.
func (l MappingLayout) LogValue() slog.Value {
	groups := make([]slog.Attr, 0, len(l.Groups))
	for i, g := range l.Groups {
		groups = append(groups, slog.Group(strconv.Itoa(i),
			slog.Any("actions", stringList(g.Actions)),
			slog.Any("axes", stringList(g.Axes)),
			slog.Any("unbound_actions", stringList(g.UnboundActions)),
			slog.Any("unbound_axes", stringList(g.UnboundAxes)),
		))
	}
	return slog.GroupValue(groups...)
}

func stringList[T fmt.Stringer](items []T) []string {
	result := make([]string, len(items))
	for i, m := range items {
		result[i] = m.String()
	}
	return result
}
