package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderTabs() string {
	tabs := m.state.Tabs
	parts := make([]string, 0, tabs.Len())
	for i, title := range tabs.Titles {
		label := fmt.Sprintf("%d %s", i, title)
		if i == tabs.Index {
			parts = append(parts, TabActiveStyle.Render(label))
		} else {
			parts = append(parts, TabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
