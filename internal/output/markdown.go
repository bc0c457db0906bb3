// Package output writes run artifacts: the JSON report consumed by
// downstream tooling and a markdown comparison table for humans.
//
// This file (markdown.go) renders pre-built table rows as a markdown
// table. The first row is the header.
package output

import "strings"

// RenderMarkdownTable renders rows as a GitHub-flavored markdown table.
// Returns an empty string when there is nothing to render.
func RenderMarkdownTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for i, cell := range row {
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return b.String()
}
