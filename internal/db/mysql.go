// internal/db/mysql.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLDriver implements Driver for MySQL
type MySQLDriver struct {
	sqlConn
}

// mysqlConfig builds the driver configuration for params over network net
func mysqlConfig(params ConnectParams, network string) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = params.User
	cfg.Passwd = params.Password
	cfg.Net = network
	cfg.Addr = net.JoinHostPort(params.Host, fmt.Sprint(params.Port))
	cfg.DBName = params.Database
	return cfg
}

// Connect establishes connection to MySQL
func (d *MySQLDriver) Connect(params ConnectParams) error {
	log.Printf("mysql: connecting to %s:%d/%s as %s", params.Host, params.Port, params.Database, params.User)

	network := "tcp"
	tunnel, err := d.openTunnel(params.SSHConfig)
	if err != nil {
		return err
	}
	if tunnel != nil {
		// Each tunnel gets its own registered network name
		network = fmt.Sprintf("mysql+ssh+%d", time.Now().UnixNano())
		mysql.RegisterDialContext(network, func(ctx context.Context, addr string) (net.Conn, error) {
			return tunnel.DialContext(ctx, "tcp", addr)
		})
	}

	connector, err := mysql.NewConnector(mysqlConfig(params, network))
	if err != nil {
		d.Close()
		return WrapConnectionError(err)
	}
	db := sql.OpenDB(connector)
	pool(db)
	return d.attach(db, params.PageSize)
}

// Type returns the driver type
func (d *MySQLDriver) Type() DriverType {
	return MySQL
}
