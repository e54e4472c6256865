package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nhath/sqlterm/internal/console"
	"github.com/nhath/sqlterm/internal/editor"
)

var tabSpaces = strings.Repeat(" ", editor.TabWidth)

// expandTabs renders tabs as the spaces the cursor column accounts for
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", tabSpaces)
}

// renderCursorLine draws line with a block cursor at display column col
func renderCursorLine(line string, col int) string {
	expanded := expandTabs(line)
	w := 0
	for i, r := range expanded {
		rw := runewidth.RuneWidth(r)
		if w == col && rw > 0 {
			return expanded[:i] + CursorStyle.Render(string(r)) + expanded[i+len(string(r)):]
		}
		w += rw
		if w > col {
			break
		}
	}
	return expanded + CursorStyle.Render(" ")
}

// editorLines renders the editor buffer, one string per row
func (m Model) editorLines() []string {
	ed := m.state.Editor
	lines := ed.Input().Lines()
	editing := m.state.Mode == console.Editing

	if len(lines) == 0 {
		if editing {
			return []string{CursorStyle.Render(" ")}
		}
		return []string{PlaceholderStyle.Render("Press e to start editing")}
	}

	// The pane border is the origin, so the cursor cell is one in from it.
	cursor := console.CursorPosition(console.Point{}, m.state)
	row, col := cursor.Y-1, cursor.X-1

	out := make([]string, len(lines))
	for i, line := range lines {
		if editing && i == row {
			out[i] = renderCursorLine(line, col)
		} else {
			out[i] = expandTabs(line)
		}
	}
	return out
}

// renderInput renders the bordered editor pane
func (m Model) renderInput(width, height int) string {
	lines := m.editorLines()

	// Keep the cursor row visible when the buffer is taller than the pane
	inner := height - 2
	if inner < 1 {
		inner = 1
	}
	if len(lines) > inner {
		start := m.state.Editor.CursorRow() - inner + 1
		if start < 0 {
			start = 0
		}
		lines = lines[start : start+inner]
	}

	style := PaneStyle
	if m.state.Mode == console.Editing {
		style = PaneActiveStyle
	}
	return style.Width(width - 2).Height(inner).Render(strings.Join(lines, "\n"))
}
