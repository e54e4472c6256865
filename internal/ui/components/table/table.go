// Package table renders query results with bubble-table.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"
	"github.com/mattn/go-runewidth"

	"github.com/nhath/sqlterm/internal/db"
)

// Nord colors
const (
	ColorForeground = "#D8DEE9" // Nord4: Light gray
	ColorComment    = "#4C566A" // Nord3: Dark gray
	ColorGreen      = "#A3BE8C" // Nord14: Green
	ColorOrange     = "#D08770" // Nord12: Orange
	ColorPurple     = "#B48EAD" // Nord15: Purple
	ColorYellow     = "#EBCB8B" // Nord13: Yellow
	ColorTeal       = "#8FBCBB" // Nord7: Teal
)

// MaxColumnWidth caps how wide a single column is drawn
const MaxColumnWidth = 40

// New creates a new bubble-table with Nord theme (no background)
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorForeground)).
			Align(lipgloss.Left)).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTeal)).
			Bold(true)).
		BorderRounded()
}

// Window is the part of a result that is on screen
type Window struct {
	// FirstColumn and FirstRow are the scroll offsets
	FirstColumn int
	FirstRow    int
	// MaxRows limits the rows drawn; 0 means all
	MaxRows int
	// MaxWidth limits the total table width; 0 means unlimited
	MaxWidth int
}

// FromResult builds a table showing the window of res
func FromResult(res *db.ResultSet, w Window) bbtable.Model {
	if res == nil || len(res.Columns) == 0 {
		return bbtable.New(nil)
	}

	firstCol := clamp(w.FirstColumn, 0, len(res.Columns)-1)
	rows := res.Rows()
	firstRow := clamp(w.FirstRow, 0, len(rows))
	lastRow := len(rows)
	if w.MaxRows > 0 && firstRow+w.MaxRows < lastRow {
		lastRow = firstRow + w.MaxRows
	}
	visible := rows[firstRow:lastRow]

	var cols []bbtable.Column
	for i := firstCol; i < len(res.Columns); i++ {
		width := columnWidth(res.Columns[i], visible, i)
		cols = append(cols, bbtable.NewColumn(columnKey(i), res.Columns[i], width))
	}

	tableRows := make([]bbtable.Row, 0, len(visible))
	for _, r := range visible {
		rowData := bbtable.RowData{}
		for i := firstCol; i < len(r) && i < len(res.Columns); i++ {
			val := flatten(r[i])
			rowData[columnKey(i)] = bbtable.NewStyledCell(val, GetValueStyle(val))
		}
		tableRows = append(tableRows, bbtable.NewRow(rowData))
	}

	t := New(cols).WithRows(tableRows).WithNoPagination()
	if w.MaxWidth > 0 {
		t = t.WithMaxTotalWidth(w.MaxWidth)
	}
	return t
}

// columnKey identifies a column by position; result columns may share names
func columnKey(i int) string {
	return fmt.Sprintf("c%d", i)
}

func columnWidth(header string, rows [][]string, col int) int {
	w := runewidth.StringWidth(header)
	for _, r := range rows {
		if col < len(r) {
			if cw := runewidth.StringWidth(flatten(r[col])); cw > w {
				w = cw
			}
		}
	}
	w += 2
	if w > MaxColumnWidth {
		w = MaxColumnWidth
	}
	return w
}

func flatten(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// GetValueStyle returns a lipgloss style based on value content
func GetValueStyle(val string) lipgloss.Style {
	if val == "" || strings.ToUpper(val) == "NULL" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorComment)).Italic(true)
	}
	if _, err := fmt.Sscanf(val, "%f", new(float64)); err == nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPurple))
	}
	lower := strings.ToLower(val)
	if lower == "true" || lower == "false" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow))
}
