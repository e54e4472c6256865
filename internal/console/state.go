package console

import (
	"github.com/nhath/sqlterm/internal/editor"
)

// Options configure a new State
type Options struct {
	TabTitles    []string
	HistoryLimit int
}

// State is everything the console remembers during a session
type State struct {
	Mode       Mode
	Tabs       Tabs
	History    *History
	LastResult *Projection
	Editor     *editor.Editor
	// Pending is the submission currently running, if any
	Pending *Submission
}

// NewState returns a console in browsing mode with an empty editor
func NewState(opts Options) *State {
	return &State{
		Mode:    Browsing,
		Tabs:    NewTabs(opts.TabTitles),
		History: NewHistory(opts.HistoryLimit),
		Editor:  editor.New(),
	}
}

// Complete applies a finished submission. Completions for anything other
// than the pending submission are dropped and Complete returns false.
func (s *State) Complete(c Completion) bool {
	if s.Pending == nil || s.Pending.ID != c.ID {
		return false
	}
	s.Pending.release()
	s.Pending = nil

	if c.Err != nil {
		s.History.Append(c.Message())
		return true
	}

	p := &Projection{
		Elapsed: c.Elapsed.Seconds(),
		Result:  c.Result,
	}
	if c.Result != nil {
		p.RowCount = c.Result.RowCount()
	}
	s.LastResult = p
	s.History.Append(c.SQL)
	return true
}
