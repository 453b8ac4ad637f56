// Package render turns a graph model into display rows and plain text
// tables for the CLI.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vuegraph/vuegraph/engine/domain"
	"github.com/vuegraph/vuegraph/pkg/fn"
)

// Endpoint titles longer than this are cut with a "..." suffix so link
// rows stay readable on one line.
const maxEndpointRunes = 30

// NodeRows renders one row per node in model order. Non-verbose rows
// carry the bare id; verbose rows add title and resource type.
func NodeRows(m *domain.GraphModel, verbose bool) [][]string {
	if verbose {
		return fn.Map(m.Nodes, func(n domain.MapNode) []string {
			return []string{n.ID, n.Title, string(n.Resource)}
		})
	}
	return fn.Map(m.Nodes, func(n domain.MapNode) []string {
		return []string{n.ID}
	})
}

// LinkRows renders one row per link in model order. Non-verbose rows
// carry the endpoint ids; verbose rows render endpoint titles joined by
// the link's arrow notation.
func LinkRows(m *domain.GraphModel, verbose bool) [][]string {
	if verbose {
		return fn.Map(m.Links, func(l domain.MapLink) []string {
			return []string{endpointLabel(m, l.SourceID), arrow(l), endpointLabel(m, l.TargetID)}
		})
	}
	return fn.Map(m.Links, func(l domain.MapLink) []string {
		return []string{l.SourceID, l.TargetID}
	})
}

// arrow renders a link's label and direction in the map's own notation:
// --[label]--> for directed, --[label]-- for undirected, collapsing to
// --> or -- when the label is empty.
func arrow(l domain.MapLink) string {
	tail := "--"
	if l.Directed {
		tail = "-->"
	}
	if l.Label == "" {
		return tail
	}
	return "--[" + l.Label + "]" + tail
}

func endpointLabel(m *domain.GraphModel, id string) string {
	n, ok := m.NodeByID(id)
	if !ok || n.Title == "" {
		return id
	}
	return truncate(n.Title, maxEndpointRunes)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// Table renders a width-aligned text table with a dash separator under
// the header row.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}

	writeRow(header)
	seps := make([]string, len(header))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeRow(seps)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
