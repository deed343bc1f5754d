package tools

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTables(t *testing.T) {
	connector := newTestConnector(t)

	result, output, err := listTablesHandler(context.Background(), ListTablesInput{}, connector, "testdb")
	require.NoError(t, err)

	// Introspection order: alphabetical by table name.
	assert.Equal(t, []string{"empty_table", "users"}, output.Tables)

	require.Len(t, result.Content, 1)
	text := result.Content[0].(*mcp.TextContent).Text
	assert.Equal(t, "Tables_in_testdb\nempty_table\nusers", text)
}

func TestListTablesEmptyDatabase(t *testing.T) {
	connector := client.NewConnectorDSN("sqlite", filepath.Join(t.TempDir(), "empty.db"))

	result, output, err := listTablesHandler(context.Background(), ListTablesInput{}, connector, "testdb")
	require.NoError(t, err)

	// An empty list, not an absent one.
	require.NotNil(t, output.Tables)
	assert.Empty(t, output.Tables)

	text := result.Content[0].(*mcp.TextContent).Text
	assert.Equal(t, "Tables_in_testdb", text)
}

func TestListTablesConnectionFailure(t *testing.T) {
	connector := brokenConnector()

	_, _, err := listTablesHandler(context.Background(), ListTablesInput{}, connector, "testdb")
	require.Error(t, err)

	var connErr *client.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}
