// cmd/sqlterm/main.go
package main

import (
	"context"
	"flag"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/nhath/sqlterm/internal/config"
	"github.com/nhath/sqlterm/internal/console"
	"github.com/nhath/sqlterm/internal/db"
	"github.com/nhath/sqlterm/internal/history"
	"github.com/nhath/sqlterm/internal/logging"
	"github.com/nhath/sqlterm/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "Enable debug logging to debug.log")
	profileName := flag.String("profile", "", "Connection profile to use (defaults to default_profile)")
	dsn := flag.String("dsn", "", "Connect with a URL such as postgres://user@host/db instead of a profile")
	command := flag.String("c", "", "Run a single SQL statement, print the result and exit")
	historyN := flag.Int("history", 0, "Print the N most recent saved queries and exit")
	search := flag.String("history-search", "", "Print saved queries containing TEXT and exit")
	forget := flag.Int64("history-delete", 0, "Delete the saved query with this ID and exit")
	saveName := flag.String("save-profile", "", "Save -dsn as a profile with this name, passwords going to the keyring, and exit")
	deleteName := flag.String("delete-profile", "", "Remove a profile and its keyring passwords and exit")
	flag.Parse()

	logs := logging.NewBuffer(0)
	closer, err := logging.Setup(logs, *debug, "debug.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: could not open debug log: %v\n", err)
		return 1
	}
	defer closer.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	switch {
	case *saveName != "":
		if err := saveProfile(cfg, openKeyring(), *saveName, *dsn); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("Saved profile %s\n", *saveName)
		return 0
	case *deleteName != "":
		if err := deleteProfile(cfg, openKeyring(), *deleteName); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("Deleted profile %s\n", *deleteName)
		return 0
	}

	profile, err := resolveProfile(cfg, *profileName, *dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	historyStore, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize history: %v\n", err)
		return 1
	}
	defer historyStore.Close()
	historyStore.SetLimit(cfg.HistoryLimit)

	switch {
	case *historyN > 0:
		return exitCode(printHistory(os.Stdout, historyStore, profile.Name, *historyN))
	case *search != "":
		return exitCode(searchHistory(os.Stdout, historyStore, profile.Name, *search))
	case *forget > 0:
		return exitCode(forgetHistory(os.Stdout, historyStore, *forget))
	case *command != "":
		return runCommand(cfg, profile, *command)
	}

	model := ui.NewModel(ui.Options{
		Config:  cfg,
		Profile: profile,
		Store:   historyStore,
		Logs:    logs,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return 1
	}
	return 0
}

// resolveProfile picks the connection from -dsn, -profile, the configured
// default, or an in-memory SQLite database, in that order
func resolveProfile(cfg *config.Config, name, dsn string) (*config.Profile, error) {
	if dsn != "" {
		p, err := config.ParseDSN("dsn", dsn)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}
	if name == "" {
		name = cfg.DefaultProfile
	}
	if name == "" {
		return &config.Profile{Name: "memory", Type: string(db.SQLite), Database: ":memory:"}, nil
	}
	return cfg.GetProfile(name)
}

// runCommand executes one statement outside the TUI
func runCommand(cfg *config.Config, profile *config.Profile, sql string) int {
	if err := profile.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if profile.Type != string(db.SQLite) {
		profile.LoadSecrets(openKeyring())
	}

	driver, err := db.Open(db.DriverType(profile.Type), profile.ConnectParams(cfg.PageSize))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	engine := db.NewEngine(driver)
	defer engine.Close()

	state := console.NewState(console.Options{HistoryLimit: 1})
	d := console.NewDispatcher(context.Background(), state, cfg.Timeout())
	c := d.Submit(context.Background(), engine, sql)
	if c.Err != nil {
		fmt.Fprintln(os.Stderr, c.Message())
		return 1
	}

	if out := c.Result.Pretty(); out != "" {
		fmt.Println(out)
		fmt.Printf("%s rows in %s\n", humanize.Comma(int64(c.Result.RowCount())), c.Elapsed)
	} else {
		fmt.Printf("%s rows affected in %s\n", humanize.Comma(c.Result.RowsAffected), c.Elapsed)
	}
	return 0
}

// openKeyring returns nil when no keyring backend is available
func openKeyring() *config.KeyringStore {
	k, err := config.NewKeyringStore()
	if err != nil {
		log.Printf("keyring: %v", err)
		return nil
	}
	return k
}

// saveProfile stores dsn as a named profile. Passwords in the dsn are kept
// out of the config file and written to the keyring.
func saveProfile(cfg *config.Config, keys *config.KeyringStore, name, dsn string) error {
	if dsn == "" {
		return errors.New("-save-profile needs -dsn")
	}
	p, err := config.ParseDSN(name, dsn)
	if err != nil {
		return err
	}
	if (p.Password != "" || p.SSHPassword != "") && keys == nil {
		return fmt.Errorf("profile %s has a password but no keyring is available", name)
	}
	if err := cfg.AddProfile(p); err != nil {
		return err
	}
	if keys == nil {
		return nil
	}
	return p.StoreSecrets(keys)
}

// deleteProfile removes a profile and forgets its passwords
func deleteProfile(cfg *config.Config, keys *config.KeyringStore, name string) error {
	if err := cfg.DeleteProfile(name); err != nil {
		return err
	}
	if keys != nil {
		if err := keys.DeletePassword(name); err != nil {
			log.Printf("keyring: %s: %v", name, err)
		}
	}
	return nil
}

func exitCode(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printEntries(w io.Writer, entries []history.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%6d  %-12s %-7s %s\n", e.ID, humanize.Time(e.ExecutedAt), e.Status, e.QueryPreview(80))
	}
}

// printHistory lists saved queries for a profile, newest first
func printHistory(w io.Writer, store *history.Store, profileName string, n int) error {
	entries, err := store.List(profileName, n, 0)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	printEntries(w, entries)
	return nil
}

// searchHistory lists saved queries containing text, newest first
func searchHistory(w io.Writer, store *history.Store, profileName, text string) error {
	entries, err := store.Search(profileName, text, 50)
	if err != nil {
		return fmt.Errorf("search history: %w", err)
	}
	printEntries(w, entries)
	return nil
}

// forgetHistory deletes one saved query by ID
func forgetHistory(w io.Writer, store *history.Store, id int64) error {
	e, err := store.GetByID(id)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if e == nil {
		return fmt.Errorf("no saved query with id %d", id)
	}
	if err := store.Delete(id); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	fmt.Fprintf(w, "Deleted %d: %s\n", e.ID, e.QueryPreview(80))
	return nil
}
