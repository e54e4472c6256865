// internal/ui/handle_keys.go
// Key translation from Bubble Tea events to console keys.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/sqlterm/internal/console"
)

// translateKey maps a key event to console keys. Pasted text yields one key
// per rune; newlines inside a paste are typed, never submitted. A paste while
// browsing is dropped so its runes are not read as commands.
func (m Model) translateKey(msg tea.KeyMsg) []console.Key {
	keys := m.config.Keys

	if matchKey(msg, keys.Interrupt) {
		return []console.Key{{Kind: console.KeyInterrupt}}
	}
	if msg.Paste && m.state.Mode == console.Browsing {
		return nil
	}

	// Letter scroll bindings only apply while browsing; in the editor they type.
	if m.state.Mode == console.Browsing {
		switch {
		case matchKey(msg, keys.ScrollLeft):
			return []console.Key{{Kind: console.KeyLeft}}
		case matchKey(msg, keys.ScrollRight):
			return []console.Key{{Kind: console.KeyRight}}
		case matchKey(msg, keys.ScrollUp):
			return []console.Key{{Kind: console.KeyUp}}
		case matchKey(msg, keys.ScrollDown):
			return []console.Key{{Kind: console.KeyDown}}
		}
	}

	switch msg.Type {
	case tea.KeyEnter:
		return []console.Key{{Kind: console.KeyEnter}}
	case tea.KeyBackspace:
		return []console.Key{{Kind: console.KeyBackspace}}
	case tea.KeyTab:
		return []console.Key{{Kind: console.KeyTab}}
	case tea.KeyEsc:
		return []console.Key{{Kind: console.KeyEsc}}
	case tea.KeyUp:
		return []console.Key{{Kind: console.KeyUp}}
	case tea.KeyDown:
		return []console.Key{{Kind: console.KeyDown}}
	case tea.KeyLeft:
		return []console.Key{{Kind: console.KeyLeft}}
	case tea.KeyRight:
		return []console.Key{{Kind: console.KeyRight}}
	case tea.KeySpace:
		return []console.Key{console.Char(' ')}
	case tea.KeyRunes:
		out := make([]console.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == '\r' {
				r = '\n'
			}
			out = append(out, console.Char(r))
		}
		return out
	}
	return []console.Key{{Kind: console.KeyOther}}
}

// handleKey feeds a key event through the dispatcher
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if matchKey(msg, m.config.Keys.ForceQuit) {
		if m.state.Pending != nil {
			m.state.Pending.Cancel()
		}
		m.quitting = true
		return m, tea.Quit
	}

	// History and Logs scroll their own pane while browsing
	if m.state.Mode == console.Browsing && m.state.Tabs.Index != TabEditor {
		switch msg.Type {
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd
	for _, k := range m.translateKey(msg) {
		action, sub := m.dispatcher.HandleKey(k)
		if action == console.Exit {
			m.quitting = true
			return m, tea.Quit
		}
		if sub != nil {
			cmds = append(cmds, m.runSubmissionCmd(sub), m.spinner.Tick)
		}
	}
	return m, tea.Batch(cmds...)
}
