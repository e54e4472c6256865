// internal/ui/messages.go
package ui

import (
	"github.com/nhath/sqlterm/internal/console"
	"github.com/nhath/sqlterm/internal/db"
)

// QueryFinishedMsg is sent when a submission completes, fails or is canceled
type QueryFinishedMsg struct {
	Completion console.Completion
}

// ProfileConnectedMsg is sent when profile connection completes
type ProfileConnectedMsg struct {
	Driver db.Driver
	Err    error
}
