// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nhath/sqlterm/internal/config"
	"github.com/nhath/sqlterm/internal/console"
	"github.com/nhath/sqlterm/internal/db"
	"github.com/nhath/sqlterm/internal/history"
	"github.com/nhath/sqlterm/internal/logging"
)

// Model is the root Bubble Tea model
type Model struct {
	appState AppState

	// Core state
	width, height int
	config        *config.Config
	profile       *config.Profile
	engine        *db.Engine
	historyStore  *history.Store
	sessionID     string
	logs          *logging.Buffer

	// Console session shared by every copy of the model
	state      *console.State
	dispatcher *console.Dispatcher

	// Components
	spinner  spinner.Model
	viewport viewport.Model

	// Status
	connectError string
	quitting     bool
}

// Options bundles the collaborators of a Model. Driver may be nil, in
// which case Profile is connected from Init.
type Options struct {
	Config  *config.Config
	Profile *config.Profile
	Driver  db.Driver
	Store   *history.Store
	Logs    *logging.Buffer
}

// NewModel creates a new UI model
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	InitStyles(cfg.Theme)

	logs := opts.Logs
	if logs == nil {
		logs = logging.NewBuffer(0)
	}

	state := console.NewState(console.Options{
		TabTitles:    cfg.Tabs,
		HistoryLimit: cfg.HistoryLimit,
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor())

	appState := StateOffline
	var engine *db.Engine
	switch {
	case opts.Driver != nil:
		appState = StateReady
		engine = db.NewEngine(opts.Driver)
	case opts.Profile != nil:
		appState = StateConnecting
	}

	return Model{
		appState:     appState,
		config:       cfg,
		profile:      opts.Profile,
		engine:       engine,
		historyStore: opts.Store,
		sessionID:    uuid.NewString(),
		logs:         logs,
		state:        state,
		dispatcher:   console.NewDispatcher(context.Background(), state, cfg.Timeout()),
		spinner:      sp,
		viewport:     viewport.New(80, 10),
	}
}

// State exposes the console session
func (m Model) State() *console.State {
	return m.state
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.appState == StateConnecting {
		return tea.Batch(m.spinner.Tick, m.connectToProfileCmd(m.profile))
	}
	return nil
}
