// internal/db/postgres.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresDriver implements Driver for PostgreSQL
type PostgresDriver struct {
	sqlConn
}

// pgConfig builds the pgx configuration for params. Credentials go through
// url.URL so special characters are escaped.
func pgConfig(params ConnectParams) (*pgx.ConnConfig, error) {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(params.User, params.Password),
		Host:   net.JoinHostPort(params.Host, fmt.Sprint(params.Port)),
		Path:   "/" + params.Database,
	}
	return pgx.ParseConfig(u.String())
}

// Connect establishes connection to PostgreSQL
func (d *PostgresDriver) Connect(params ConnectParams) error {
	log.Printf("postgres: connecting to %s:%d/%s as %s", params.Host, params.Port, params.Database, params.User)

	connConfig, err := pgConfig(params)
	if err != nil {
		return WrapConnectionError(err)
	}

	tunnel, err := d.openTunnel(params.SSHConfig)
	if err != nil {
		return err
	}
	if tunnel != nil {
		// The SSH server resolves the hostname, not the local machine.
		connConfig.LookupFunc = func(ctx context.Context, host string) ([]string, error) {
			return []string{host}, nil
		}
		remoteAddr := net.JoinHostPort(params.Host, fmt.Sprint(params.Port))
		connConfig.DialFunc = func(ctx context.Context, network, _ string) (net.Conn, error) {
			return tunnel.DialContext(ctx, network, remoteAddr)
		}
	}

	db, err := sql.Open("pgx", stdlib.RegisterConnConfig(connConfig))
	if err != nil {
		d.Close()
		return WrapConnectionError(err)
	}
	pool(db)
	return d.attach(db, params.PageSize)
}

// Type returns the driver type
func (d *PostgresDriver) Type() DriverType {
	return Postgres
}
