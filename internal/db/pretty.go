package db

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pretty renders the result as a bordered text grid, one line per row.
// It returns an empty string for statements without columns.
func (r *ResultSet) Pretty() string {
	if len(r.Columns) == 0 {
		return ""
	}

	rows := r.Rows()
	widths := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		widths[i] = runewidth.StringWidth(cellText(c))
	}
	for _, row := range rows {
		for i, v := range row {
			if w := runewidth.StringWidth(cellText(v)); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	border := func() {
		sb.WriteByte('+')
		for _, w := range widths {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	line := func(cells []string) {
		sb.WriteByte('|')
		for i, w := range widths {
			v := ""
			if i < len(cells) {
				v = cellText(cells[i])
			}
			sb.WriteByte(' ')
			sb.WriteString(runewidth.FillRight(v, w))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	border()
	line(r.Columns)
	border()
	for _, row := range rows {
		line(row)
	}
	if len(rows) > 0 {
		border()
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// cellText flattens control characters that would break the grid
func cellText(s string) string {
	return strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "    ").Replace(s)
}
