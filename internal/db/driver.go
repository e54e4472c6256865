// internal/db/driver.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// DefaultPageSize is the number of rows per batch when none is configured
const DefaultPageSize = 100

// ConnectParams holds database connection details
type ConnectParams struct {
	Host      string
	Port      int
	User      string
	Password  string
	Database  string
	PageSize  int        // Rows per result batch
	SSHConfig *SSHConfig // Optional SSH tunnel config
}

// Driver defines the interface for database operations
type Driver interface {
	Connect(params ConnectParams) error
	Close() error
	Execute(ctx context.Context, query string) (*ResultSet, error)
	Ping(ctx context.Context) error
	Type() DriverType
}

// Batch is a run of consecutive result rows
type Batch struct {
	Rows [][]string
}

// ResultSet contains query execution results. Rows arrive in batches of at
// most the configured page size; statements that return no rows have none.
type ResultSet struct {
	Columns      []string
	Batches      []Batch
	RowsAffected int64
	IsSelect     bool
}

// RowCount sums the rows of every batch
func (r *ResultSet) RowCount() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b.Rows)
	}
	return n
}

// Rows returns all rows in order
func (r *ResultSet) Rows() [][]string {
	out := make([][]string, 0, r.RowCount())
	for _, b := range r.Batches {
		out = append(out, b.Rows...)
	}
	return out
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}

// Open creates a driver of the given type and connects it
func Open(driverType DriverType, params ConnectParams) (Driver, error) {
	d, err := NewDriver(driverType)
	if err != nil {
		return nil, err
	}
	if err := d.Connect(params); err != nil {
		return nil, err
	}
	return d, nil
}

// isSelectLike reports whether query returns rows
func isSelectLike(query string) bool {
	trimmed := strings.TrimSpace(strings.ToUpper(query))
	for _, prefix := range []string{"SELECT", "WITH", "EXPLAIN", "DESCRIBE", "SHOW", "PRAGMA", "VALUES"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// executeQuery executes a query and returns results
func executeQuery(ctx context.Context, db *sql.DB, query string, pageSize int) (*ResultSet, error) {
	if db == nil {
		return nil, WrapConnectionError(fmt.Errorf("not connected"))
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if isSelectLike(query) {
		return executeSelect(ctx, db, query, pageSize)
	}
	return executeDML(ctx, db, query)
}

// executeSelect executes a row-returning query
func executeSelect(ctx context.Context, db *sql.DB, query string, pageSize int) (*ResultSet, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, WrapQueryError(err)
	}

	result := &ResultSet{Columns: columns, IsSelect: true}
	var batch Batch

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, WrapQueryError(err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		batch.Rows = append(batch.Rows, row)
		if len(batch.Rows) == pageSize {
			result.Batches = append(result.Batches, batch)
			batch = Batch{}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}
	if len(batch.Rows) > 0 {
		result.Batches = append(result.Batches, batch)
	}
	return result, nil
}

// executeDML executes INSERT/UPDATE/DELETE and DDL statements
func executeDML(ctx context.Context, db *sql.DB, query string) (*ResultSet, error) {
	result, err := db.ExecContext(ctx, query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	affected, _ := result.RowsAffected()
	return &ResultSet{RowsAffected: affected}, nil
}

// formatValue converts interface{} to string for display
func formatValue(v interface{}) string {
	if v == nil {
		return "NULL"
	}

	switch val := v.(type) {
	case []byte:
		return string(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
