package cli

import (
	"strings"
)

// Table is a simple column-aligned text formatter. Cells may contain
// ANSI escape sequences (colour swatches); width accounting only counts
// visible characters so coloured cells do not skew the columns.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		padding: 2, // spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded with empty
// cells to match the header count; long rows are truncated.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats the table as a string with a dashed separator under
// the header line.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if l := visibleLen(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var out strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padVisible(cell, widths[i])
		}
		out.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		out.WriteString("\n")
	}

	writeRow(t.headers)

	seps := make([]string, len(t.headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeRow(seps)

	for _, row := range t.rows {
		writeRow(row)
	}
	return out.String()
}

// visibleLen returns the length of s excluding ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			n++
		}
	}
	return n
}

// padVisible pads s with spaces on the right until its visible length
// reaches width.
func padVisible(s string, width int) string {
	if l := visibleLen(s); l < width {
		return s + strings.Repeat(" ", width-l)
	}
	return s
}
