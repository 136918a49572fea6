// Package textutil formats help text for fixed-width terminals.
package textutil

import "strings"

// Wrap splits text into lines no wider than width, breaking on whitespace. A word longer than
// width is kept whole on its own line. Runs of whitespace collapse to one space.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Columns writes rows as a two-column table: the left cells padded to a common width and the
// right cells wrapped to fit within total, continuation lines aligned under the right column.
func Columns(b *strings.Builder, rows [][2]string, total int) {
	left := 0
	for _, r := range rows {
		left = max(left, len(r[0]))
	}
	gutter := left + 4
	for _, r := range rows {
		lines := Wrap(r[1], max(total-gutter-2, 20))
		if len(lines) == 0 {
			b.WriteString("  " + r[0] + "\n")
			continue
		}
		b.WriteString("  " + r[0] + strings.Repeat(" ", gutter-len(r[0])) + lines[0] + "\n")
		for _, l := range lines[1:] {
			b.WriteString(strings.Repeat(" ", gutter+2) + l + "\n")
		}
	}
}
