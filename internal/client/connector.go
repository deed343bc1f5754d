package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dbmcp/mssql-mcp-server/internal/config"
)

// ConnectTimeout bounds the open+ping handshake so an unreachable
// host fails an invocation instead of hanging it.
const ConnectTimeout = 30 * time.Second

// ConnectionError wraps a driver/network/auth failure while opening a
// connection. The driver message is preserved verbatim.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Connector opens one database connection per tool invocation. There
// is no pool shared across invocations: every caller gets a fresh
// connection and releases it before returning.
type Connector struct {
	driverName string
	dsn        string
}

func NewConnector(cfg config.Config) *Connector {
	return &Connector{
		driverName: cfg.Driver,
		dsn:        cfg.ConnectionString(),
	}
}

// NewConnectorDSN builds a connector from a raw driver name and DSN,
// bypassing the MSSQL connection-string builder.
func NewConnectorDSN(driverName, dsn string) *Connector {
	return &Connector{driverName: driverName, dsn: dsn}
}

// DriverName reports which database/sql driver this connector opens.
func (c *Connector) DriverName() string {
	return c.driverName
}

// Connect opens and verifies a single connection. The caller owns the
// returned handle and must Close it.
func (c *Connector) Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(c.driverName, c.dsn)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	// One invocation, one connection.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, &ConnectionError{Err: err}
	}

	return db, nil
}

// WithConn runs fn inside an acquire-use-release scope. The connection
// is closed on every exit path: success, handler error, and context
// cancellation, so an abandoned invocation never leaks its connection
// or leaves the query running in the background.
func (c *Connector) WithConn(ctx context.Context, fn func(db *sql.DB) error) error {
	db, err := c.Connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	done := make(chan error, 1)
	go func() { done <- fn(db) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Closing the handle tears down the in-flight query.
		db.Close()
		<-done
		return ctx.Err()
	}
}
