// internal/ui/model_types.go
// Type definitions for the UI layer
package ui

// AppState represents the connection lifecycle of the application
type AppState string

const (
	StateConnecting AppState = "CONNECTING"
	StateReady      AppState = "READY"
	StateOffline    AppState = "OFFLINE"
)

// Tab indices of the default layout
const (
	TabEditor = iota
	TabHistory
	TabLogs
)
