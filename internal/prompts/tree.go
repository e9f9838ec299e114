// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package prompts

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
)

const descriptionWidth = 40

// RowLabel is the plain text shown for a tree row.
func RowLabel(r editor.Row) string {
	indent := strings.Repeat("  ", r.Depth)
	switch r.Kind {
	case editor.RowItems:
		return fmt.Sprintf("%sitems: %s", indent, typeLabel(r.Field))
	case editor.RowAdd:
		return indent + "+ add property"
	}

	marker := " "
	if editor.Expandable(r.Field) {
		marker = "▸"
		if r.Expanded {
			marker = "▾"
		}
	}
	label := fmt.Sprintf("%s%s %s: %s", indent, marker, r.Field.Name, typeLabel(r.Field))
	if r.Field.Required {
		label += " *"
	}
	if d := r.Field.Node.Description(); d != "" {
		label += " - " + truncate(d, descriptionWidth)
	}
	return label
}

func typeLabel(f editor.Field) string {
	if f.Node.IsOpaque() {
		return "(unrecognized)"
	}
	return string(f.DisplayType())
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// RenderTree writes the visual tree with styles. Add rows are interactive
// only and are skipped.
func RenderTree(w io.Writer, rows []editor.Row) {
	name := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	muted := lipgloss.NewStyle().Foreground(mutedColor)
	required := lipgloss.NewStyle().Foreground(errorColor)

	for _, r := range rows {
		indent := strings.Repeat("  ", r.Depth)
		switch r.Kind {
		case editor.RowItems:
			_, _ = fmt.Fprintf(w, "%s%s %s\n", indent, muted.Render("items:"), typeLabel(r.Field))
			continue
		case editor.RowAdd:
			continue
		}

		line := fmt.Sprintf("%s%s %s", indent, name.Render(r.Field.Name), muted.Render(typeLabel(r.Field)))
		if r.Field.Required {
			line += " " + required.Render("*")
		}
		if d := r.Field.Node.Description(); d != "" {
			line += " " + muted.Render(truncate(d, descriptionWidth))
		}
		_, _ = fmt.Fprintln(w, line)
	}
}
