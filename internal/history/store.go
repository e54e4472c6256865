// internal/history/store.go
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// Retention is how long persisted entries are kept
const Retention = 90 * 24 * time.Hour

// Store manages query history persistence
type Store struct {
	db    *sql.DB
	limit int
}

// NewStore opens the history database under the XDG data directory
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("sqlterm/history.db")
	if err != nil {
		return nil, err
	}
	return NewStoreAt(dbPath)
}

// NewStoreAt opens or creates a history database at path
func NewStoreAt(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL DEFAULT '',
			profile_name TEXT NOT NULL,
			query TEXT NOT NULL,
			executed_at TIMESTAMP NOT NULL,
			duration_ms INTEGER NOT NULL,
			row_count INTEGER NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_history_profile ON history(profile_name);
		CREATE INDEX IF NOT EXISTS idx_history_executed_at ON history(executed_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	store := &Store{db: db}
	if err := store.cleanup(time.Now()); err != nil {
		log.Printf("history cleanup: %v", err)
	}
	return store, nil
}

// SetLimit keeps at most n entries per profile; 0 disables the limit
func (s *Store) SetLimit(n int) {
	s.limit = n
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new execution into history
func (s *Store) Add(entry *Entry) error {
	if entry.ExecutedAt.IsZero() {
		entry.ExecutedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO history (session_id, profile_name, query, executed_at, duration_ms, row_count, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.SessionID,
		entry.ProfileName,
		entry.Query,
		entry.ExecutedAt.UTC(),
		entry.DurationMs,
		entry.RowCount,
		entry.Status,
		entry.ErrorMessage,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	if s.limit > 0 {
		return s.enforceLimit(entry.ProfileName, s.limit)
	}
	return nil
}

// enforceLimit keeps only the most recent N entries per profile
func (s *Store) enforceLimit(profileName string, limit int) error {
	_, err := s.db.Exec(`
		DELETE FROM history
		WHERE profile_name = ?
		AND id NOT IN (
			SELECT id FROM history
			WHERE profile_name = ?
			ORDER BY executed_at DESC, id DESC
			LIMIT ?
		)
	`, profileName, profileName, limit)
	return err
}

const selectColumns = `SELECT id, session_id, profile_name, query, executed_at, duration_ms, row_count, status, error_message FROM history`

// List returns paginated history entries for a profile, newest first
func (s *Store) List(profileName string, limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(selectColumns+`
		WHERE profile_name = ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, profileName, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds history entries by query substring
func (s *Store) Search(profileName, querySubstr string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(selectColumns+`
		WHERE profile_name = ? AND query LIKE ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`, profileName, "%"+querySubstr+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.SessionID, &e.ProfileName, &e.Query, &e.ExecutedAt,
		&e.DurationMs, &e.RowCount, &e.Status, &e.ErrorMessage)
	return e, err
}

// scanEntries scans rows into an Entry slice
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a single history entry by ID. It returns nil when no
// entry has that ID.
func (s *Store) GetByID(id int64) (*Entry, error) {
	e, err := scanEntry(s.db.QueryRow(selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM history WHERE id = ?", id)
	return err
}

// cleanup removes entries older than Retention
func (s *Store) cleanup(now time.Time) error {
	_, err := s.db.Exec(`DELETE FROM history WHERE executed_at < ?`, now.Add(-Retention).UTC())
	return err
}

// Count returns the total number of history entries for a profile
func (s *Store) Count(profileName string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM history WHERE profile_name = ?
	`, profileName).Scan(&count)
	return count, err
}
