// internal/ui/app.go
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update handles messages and updates model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = m.paneHeight()

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case QueryFinishedMsg:
		m = m.handleQueryFinished(msg)

	case ProfileConnectedMsg:
		m = m.handleProfileConnected(msg)

	case spinner.TickMsg:
		if m.busy() {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	}

	m.syncViewport()
	return m, cmd
}

// busy reports whether something is in flight that the spinner shows
func (m Model) busy() bool {
	return m.state.Pending != nil || m.appState == StateConnecting
}

// paneHeight is the height left for the tab body
func (m Model) paneHeight() int {
	// help line, tab strip, status bar
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// syncViewport loads the scrollable content of the History and Logs tabs.
// A viewport already at the bottom follows new lines.
func (m *Model) syncViewport() {
	var content string
	switch m.state.Tabs.Index {
	case TabHistory:
		content = m.renderHistory()
	case TabLogs:
		content = m.renderLogs()
	case TabEditor:
		return
	}
	follow := m.viewport.AtBottom() || m.viewport.TotalLineCount() == 0
	m.viewport.SetContent(content)
	if follow {
		m.viewport.GotoBottom()
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left, m.renderHelp(), m.renderTabs())
	statusBar := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.state.Tabs.Index {
	case TabEditor:
		body = m.renderEditorTab(bodyHeight)
	default:
		body = m.viewport.View()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}
