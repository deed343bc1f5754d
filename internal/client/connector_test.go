package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func sqliteConnector(t *testing.T) *Connector {
	t.Helper()
	return NewConnectorDSN("sqlite", filepath.Join(t.TempDir(), "test.db"))
}

func TestConnectUnreachable(t *testing.T) {
	connector := NewConnectorDSN("sqlite", "/nonexistent-dir/never.db")

	_, err := connector.Connect(context.Background())
	require.Error(t, err)

	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestWithConnReleasesOnSuccess(t *testing.T) {
	connector := sqliteConnector(t)

	var captured *sql.DB
	err := connector.WithConn(context.Background(), func(db *sql.DB) error {
		captured = db
		return db.Ping()
	})
	require.NoError(t, err)

	// The handle must be closed once the scope exits.
	assert.Error(t, captured.Ping())
}

func TestWithConnReleasesOnError(t *testing.T) {
	connector := sqliteConnector(t)

	var captured *sql.DB
	err := connector.WithConn(context.Background(), func(db *sql.DB) error {
		captured = db
		_, err := db.Exec("NOT SQL AT ALL")
		return err
	})
	require.Error(t, err)
	assert.Error(t, captured.Ping())
}

func TestWithConnReleasesOnCancellation(t *testing.T) {
	connector := sqliteConnector(t)

	ctx, cancel := context.WithCancel(context.Background())

	var captured *sql.DB
	err := connector.WithConn(ctx, func(db *sql.DB) error {
		captured = db
		cancel()
		// Simulate a query that keeps running after cancellation.
		time.Sleep(100 * time.Millisecond)
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Error(t, captured.Ping())
}

func TestWithConnPropagatesHandlerError(t *testing.T) {
	connector := sqliteConnector(t)

	sentinel := assert.AnError
	err := connector.WithConn(context.Background(), func(db *sql.DB) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
