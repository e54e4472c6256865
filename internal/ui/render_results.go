package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhath/sqlterm/internal/console"
	eztable "github.com/nhath/sqlterm/internal/ui/components/table"
)

// renderEditorTab lays out the editor pane above the results pane
func (m Model) renderEditorTab(height int) string {
	width := m.width

	// Editor grows with its content, up to half the body
	editorHeight := m.state.Editor.Input().LineCount() + 2
	if editorHeight < 3 {
		editorHeight = 3
	}
	if maxHeight := height / 2; editorHeight > maxHeight && maxHeight >= 3 {
		editorHeight = maxHeight
	}

	input := m.renderInput(width, editorHeight)
	results := m.renderResults(width, height-lipgloss.Height(input))
	return lipgloss.JoinVertical(lipgloss.Left, input, results)
}

// renderResults draws whatever Classify picks for the results pane
func (m Model) renderResults(width, height int) string {
	inner := height - 2
	if inner < 1 {
		inner = 1
	}

	var content string
	switch console.Classify(m.state) {
	case console.ViewTable:
		content = m.renderTable(width-2, inner)
	case console.ViewHistory:
		last, _ := m.state.History.Last()
		content = last
	default:
		content = PlaceholderStyle.Render("No queries yet")
	}

	return PaneStyle.Width(width - 2).Height(inner).MaxHeight(height).Render(content)
}

// renderTable draws the last result scrolled to its projection offsets
func (m Model) renderTable(width, height int) string {
	p := m.state.LastResult
	summary := MetaStyle.Render(resultSummary(p))

	if p.Result == nil || len(p.Result.Columns) == 0 {
		if p.Result != nil {
			return summary + "\n" + fmt.Sprintf("%s rows affected", humanize.Comma(p.Result.RowsAffected))
		}
		return summary
	}

	// Borders, header and its separator take four lines; one for the summary.
	maxRows := height - 5
	if maxRows < 1 {
		maxRows = 1
	}
	t := eztable.FromResult(p.Result, eztable.Window{
		FirstColumn: p.ScrollX,
		FirstRow:    p.ScrollY,
		MaxRows:     maxRows,
		MaxWidth:    width,
	})
	return summary + "\n" + t.View()
}

// resultSummary describes the size and latency of a result
func resultSummary(p *console.Projection) string {
	elapsed := time.Duration(p.Elapsed * float64(time.Second)).Round(time.Millisecond)
	s := fmt.Sprintf("%s rows in %s", humanize.Comma(int64(p.RowCount)), elapsed)
	if p.ScrollX > 0 || p.ScrollY > 0 {
		s += fmt.Sprintf(" (row %d, column %d)", p.ScrollY+1, p.ScrollX+1)
	}
	return s
}
