package ui

import (
	"fmt"
	"strings"
)

// renderHistory lists the session history as "<index>: <entry>"
func (m Model) renderHistory() string {
	entries := m.state.History.Entries()
	if len(entries) == 0 {
		return PlaceholderStyle.Render("No queries yet")
	}
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: %s", i, e)
	}
	return sb.String()
}

// renderLogs shows the captured log output
func (m Model) renderLogs() string {
	lines := m.logs.Lines()
	if len(lines) == 0 {
		return PlaceholderStyle.Render("No log output")
	}
	return strings.Join(lines, "\n")
}
