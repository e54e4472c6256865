package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/sqlterm/internal/config"
	"github.com/nhath/sqlterm/internal/db"
)

// connectToProfileCmd connects to the given profile in the background
func (m Model) connectToProfileCmd(profile *config.Profile) tea.Cmd {
	pageSize := m.config.PageSize
	return func() tea.Msg {
		if err := profile.Validate(); err != nil {
			return ProfileConnectedMsg{Err: db.WrapConnectionError(err)}
		}

		if profile.Password == "" && profile.Type != string(db.SQLite) {
			keyringStore, err := config.NewKeyringStore()
			if err != nil {
				log.Printf("keyring: %v", err)
			} else {
				profile.LoadSecrets(keyringStore)
			}
		}

		driver, err := db.Open(db.DriverType(profile.Type), profile.ConnectParams(pageSize))
		if err != nil {
			return ProfileConnectedMsg{Err: err}
		}
		return ProfileConnectedMsg{Driver: driver}
	}
}

func (m Model) handleProfileConnected(msg ProfileConnectedMsg) Model {
	if msg.Err != nil {
		log.Printf("connect %s: %v", m.profile.Name, msg.Err)
		m.appState = StateOffline
		m.connectError = msg.Err.Error()
		return m
	}
	log.Printf("connected to %s", m.profile.Name)
	m.appState = StateReady
	m.connectError = ""
	m.engine = db.NewEngine(msg.Driver)
	return m
}
