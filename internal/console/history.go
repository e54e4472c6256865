package console

import "slices"

// DefaultHistoryLimit caps in-session history when nothing is configured
const DefaultHistoryLimit = 1000

// History is the in-session scrollback of submitted statements and error
// messages, oldest first. With a positive limit the oldest entries are
// dropped once the limit is reached.
type History struct {
	entries []string
	limit   int
}

// NewHistory creates a history holding at most limit entries; 0 means unbounded
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Append adds an entry at the end
func (h *History) Append(entry string) {
	h.entries = append(h.entries, entry)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = slices.Delete(h.entries, 0, len(h.entries)-h.limit)
	}
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry
func (h *History) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of all entries, oldest first
func (h *History) Entries() []string {
	return slices.Clone(h.entries)
}
