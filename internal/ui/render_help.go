package ui

import (
	"fmt"
	"strings"

	"github.com/nhath/sqlterm/internal/console"
)

func (m Model) renderHelp() string {
	hint := func(key, desc string) string {
		return KeyHintStyle.Render(key) + DescStyle.Render(" "+desc)
	}
	keys := m.config.Keys

	var hints []string
	if m.state.Mode == console.Editing {
		hints = append(hints,
			hint("esc", "Stop editing"),
			hint("enter", "Submit (end query with ;)"),
			hint(firstKey(keys.Interrupt, "ctrl+c"), "Cancel query"),
		)
	} else {
		hints = append(hints,
			hint("q", "Exit"),
			hint("e", "Start editing"),
			hint(fmt.Sprintf("0-%d", m.state.Tabs.Len()-1), "Switch tab"),
			hint("←↑↓→", "Scroll results"),
		)
	}
	hints = append(hints, hint(firstKey(keys.ForceQuit, "ctrl+q"), "Force quit"))

	return strings.Join(hints, "  ")
}
