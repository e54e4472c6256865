package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/sqlterm/internal/console"
	"github.com/nhath/sqlterm/internal/history"
)

// runSubmissionCmd executes a submission asynchronously and records it in
// the persistent history
func (m Model) runSubmissionCmd(sub *console.Submission) tea.Cmd {
	engine := m.engine
	store := m.historyStore
	profileName := m.profileName()
	sessionID := m.sessionID

	return func() tea.Msg {
		c := sub.Run(engine)

		if store != nil {
			entry := &history.Entry{
				SessionID:   sessionID,
				ProfileName: profileName,
				Query:       c.SQL,
				ExecutedAt:  sub.Started,
				DurationMs:  c.Elapsed.Milliseconds(),
				Status:      history.StatusSuccess,
			}
			if c.Err != nil {
				entry.Status = history.StatusError
				entry.ErrorMessage = c.Message()
			} else if c.Result != nil {
				entry.RowCount = c.Result.RowCount()
			}
			if err := store.Add(entry); err != nil {
				log.Printf("history: %v", err)
			}
		}
		return QueryFinishedMsg{Completion: c}
	}
}

func (m Model) handleQueryFinished(msg QueryFinishedMsg) Model {
	if !m.state.Complete(msg.Completion) {
		log.Printf("query %d: stale completion dropped", msg.Completion.ID)
	}
	return m
}

func (m Model) profileName() string {
	if m.profile != nil {
		return m.profile.Name
	}
	return ""
}
