// internal/db/sqlite.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDriver implements Driver for SQLite
type SQLiteDriver struct {
	sqlConn
}

// Connect opens the database file named by params.Database
func (d *SQLiteDriver) Connect(params ConnectParams) error {
	dsn := strings.TrimPrefix(params.Database, "sqlite://")
	if dsn == "" {
		dsn = ":memory:"
	}
	log.Printf("sqlite: opening %s", dsn)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return WrapConnectionError(err)
	}
	// A single connection keeps :memory: databases shared across statements
	db.SetMaxOpenConns(1)
	if err := d.attach(db, params.PageSize); err != nil {
		return err
	}

	for _, pragma := range []string{"foreign_keys = ON", "busy_timeout = 10000"} {
		if _, err := d.db.Exec("PRAGMA " + pragma); err != nil {
			d.Close()
			return WrapConnectionError(fmt.Errorf("pragma %s: %w", pragma, err))
		}
	}
	return nil
}

// Type returns the driver type
func (d *SQLiteDriver) Type() DriverType {
	return SQLite
}
