package tools

import (
	"time"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// queryTimeout bounds each tool invocation end to end, connection
// handshake included.
const queryTimeout = 30 * time.Second

// RegisterTools wires the three database tools onto the MCP server.
// Handlers share nothing but the connector, which is derived from the
// immutable startup configuration.
func RegisterTools(s *mcp.Server, connector *client.Connector, database string) {
	// List Tables Tool
	GetListTablesTool(connector, database).Register(s)
	// Read Table Tool
	GetReadTableTool(connector).Register(s)
	// Execute SQL Tool
	GetExecuteSQLTool(connector).Register(s)
}
