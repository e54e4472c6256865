// internal/db/conn.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// connectTimeout bounds the initial ping of a new connection
const connectTimeout = 15 * time.Second

// sqlConn holds what every database/sql backed driver shares: the pool, an
// optional SSH tunnel and the batch size. Drivers embed it and supply
// Connect and Type.
type sqlConn struct {
	db       *sql.DB
	tunnel   *SSHTunnel
	pageSize int
}

// openTunnel starts the SSH tunnel described by cfg, if any. The tunnel is
// owned by c from then on.
func (c *sqlConn) openTunnel(cfg *SSHConfig) (*SSHTunnel, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, nil
	}
	tunnel, err := NewSSHTunnel(cfg)
	if err != nil {
		return nil, WrapConnectionError(fmt.Errorf("failed to create SSH tunnel: %w", err))
	}
	c.tunnel = tunnel
	return tunnel, nil
}

// pool applies the limits used for networked servers
func pool(db *sql.DB) {
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// attach verifies db with a ping and adopts it. On failure db and any
// tunnel are released.
func (c *sqlConn) attach(db *sql.DB, pageSize int) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		c.Close()
		return WrapConnectionError(err)
	}
	c.db = db
	c.pageSize = pageSize
	return nil
}

// Close closes the database connection and SSH tunnel
func (c *sqlConn) Close() error {
	var dbErr error
	if c.db != nil {
		dbErr = c.db.Close()
		c.db = nil
	}

	if c.tunnel != nil {
		err := c.tunnel.Close()
		c.tunnel = nil
		if err != nil {
			if dbErr != nil {
				return fmt.Errorf("db close err: %v, tunnel close err: %w", dbErr, err)
			}
			return err
		}
	}
	return dbErr
}

// Execute runs a query and returns results
func (c *sqlConn) Execute(ctx context.Context, query string) (*ResultSet, error) {
	return executeQuery(ctx, c.db, query, c.pageSize)
}

// Ping checks if database is reachable
func (c *sqlConn) Ping(ctx context.Context) error {
	if c.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return c.db.PingContext(ctx)
}
