// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration
type Config struct {
	DefaultProfile string    `toml:"default_profile"`
	PageSize       int       `toml:"page_size"`
	HistoryLimit   int       `toml:"history_limit"`
	QueryTimeout   string    `toml:"query_timeout"`
	Tabs           []string  `toml:"tabs"`
	Profiles       []Profile `toml:"profiles"`
	Theme          Theme     `toml:"theme_colors"`
	Keys           KeyMap    `toml:"keys"`

	path string
}

// Theme defines the color palette
type Theme struct {
	TextPrimary string `toml:"text_primary"`
	TextFaint   string `toml:"text_faint"`
	Accent      string `toml:"accent"`
	Success     string `toml:"success"`
	Error       string `toml:"error"`
	Highlight   string `toml:"highlight"`
	Warning     string `toml:"warning"`
	BgSecondary string `toml:"bg_secondary"`
}

// KeyMap defines key bindings for keys outside the core editing set
type KeyMap struct {
	Interrupt   []string `toml:"interrupt"`
	ScrollLeft  []string `toml:"scroll_left"`
	ScrollRight []string `toml:"scroll_right"`
	ScrollUp    []string `toml:"scroll_up"`
	ScrollDown  []string `toml:"scroll_down"`
	ForceQuit   []string `toml:"force_quit"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: "",
		PageSize:       100,
		HistoryLimit:   1000,
		QueryTimeout:   "30s",
		Tabs:           []string{"SQL Editor", "Query History", "Logs"},
		Profiles:       []Profile{},
		Theme: Theme{
			// Nord
			TextPrimary: "#D8DEE9",
			TextFaint:   "#4C566A",
			Accent:      "#88C0D0",
			Success:     "#A3BE8C",
			Error:       "#BF616A",
			Highlight:   "#8FBCBB",
			Warning:     "#D08770",
			BgSecondary: "#3B4252",
		},
		Keys: KeyMap{
			Interrupt:   []string{"ctrl+c"},
			ScrollLeft:  []string{"left", "h"},
			ScrollRight: []string{"right", "l"},
			ScrollUp:    []string{"up", "k"},
			ScrollDown:  []string{"down", "j"},
			ForceQuit:   []string{"ctrl+q"},
		},
	}
}

// Timeout returns the parsed query timeout, falling back to 30s when the
// configured value is not a valid duration
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.QueryTimeout)
	if err != nil || d < 0 {
		return 30 * time.Second
	}
	return d
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("sqlterm/config.toml")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is created with the
// defaults; keys missing from an existing file are filled in and saved back.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.SaveTo(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	updated := false
	for _, key := range []string{"page_size", "history_limit", "query_timeout", "tabs", "theme_colors", "keys"} {
		if !md.IsDefined(key) {
			updated = true
		}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultConfig().PageSize
		updated = true
	}

	if updated {
		// Persist defaults so the user can see and edit them
		if err := cfg.SaveTo(path); err != nil {
			log.Printf("config: saving defaults: %v", err)
		}
	}
	return cfg, nil
}

// Save writes the config back to where it was loaded from
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return err
		}
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// Owner read/write only
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	c.path = path
	return toml.NewEncoder(f).Encode(c)
}
