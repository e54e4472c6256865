// internal/history/entry.go
package history

import (
	"strings"
	"time"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Entry represents a single statement submitted from the console
type Entry struct {
	ID           int64
	SessionID    string
	ProfileName  string
	Query        string
	ExecutedAt   time.Time
	DurationMs   int64
	RowCount     int
	Status       string // StatusSuccess or StatusError
	ErrorMessage string
}

// QueryPreview returns the query on one line, truncated to maxLen runes
func (e *Entry) QueryPreview(maxLen int) string {
	q := strings.Join(strings.Fields(e.Query), " ")
	r := []rune(q)
	if maxLen > 3 && len(r) > maxLen {
		return string(r[:maxLen-3]) + "..."
	}
	return q
}
