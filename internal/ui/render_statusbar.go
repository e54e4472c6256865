package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhath/sqlterm/internal/console"
	"github.com/nhath/sqlterm/internal/db"
	"github.com/nhath/sqlterm/internal/ui/icons"
)

func (m Model) renderStatusBar() string {
	var parts []string

	// 1. Mode
	modeStyle := BrowsingModeStyle
	if m.state.Mode == console.Editing {
		modeStyle = EditingModeStyle
	}
	parts = append(parts, modeStyle.Render(string(m.state.Mode)))

	// 2. Connection Info
	if p := m.profile; p != nil {
		info := fmt.Sprintf("%s %s %s@%s:%d/%s", icons.GetDatabaseIcon(p.Type), p.Name, p.User, limitString(p.Host, 20), p.Port, p.Database)
		if p.Type == string(db.SQLite) {
			info = fmt.Sprintf("%s %s sqlite:%s", icons.GetDatabaseIcon(p.Type), p.Name, limitString(p.Database, 30))
		}
		parts = append(parts, ConnectionStyle.Render(info))
	} else if m.engine != nil {
		t := string(m.engine.Driver.Type())
		parts = append(parts, ConnectionStyle.Render(icons.GetDatabaseIcon(t)+" "+t))
	} else {
		parts = append(parts, ConnectionStyle.Render("NO CONNECTION"))
	}

	// 3. Activity
	loadingStyle := lipgloss.NewStyle().Foreground(AccentColor()).Padding(0, 1)
	switch {
	case m.state.Pending != nil:
		running := time.Since(m.state.Pending.Started).Round(time.Second)
		parts = append(parts, loadingStyle.Render(fmt.Sprintf("%s Running %s", m.spinner.View(), running)))
	case m.appState == StateConnecting:
		parts = append(parts, loadingStyle.Render(m.spinner.View()+" Connecting..."))
	case m.state.LastResult != nil:
		p := m.state.LastResult
		elapsed := time.Duration(p.Elapsed * float64(time.Second)).Round(time.Millisecond)
		parts = append(parts, MetaStyle.Padding(0, 1).Render(fmt.Sprintf("%s rows, %s", humanize.Comma(int64(p.RowCount)), elapsed)))
	}

	// 4. Connection error
	if m.connectError != "" {
		parts = append(parts, ErrorStyle.Padding(0, 1).Render(icons.IconError+" "+limitString(m.connectError, 60)))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).Render(content)
}
