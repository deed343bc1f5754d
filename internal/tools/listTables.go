package tools

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ListTablesInput struct{}

type ListTablesOutput struct {
	Tables []string `json:"tables" jsonschema_description:"Names of the base tables visible to the configured credential"`
}

func GetListTablesTool(connector *client.Connector, database string) *ToolDefinition[ListTablesInput, ListTablesOutput] {
	return NewToolDefinition[ListTablesInput, ListTablesOutput](
		"list_tables",
		"List all base tables in the current database.",
		func(ctx context.Context, req *mcp.CallToolRequest, input ListTablesInput) (*mcp.CallToolResult, ListTablesOutput, error) {
			return listTablesHandler(ctx, input, connector, database)
		},
	)
}

func listTablesHandler(ctx context.Context, _ ListTablesInput, connector *client.Connector, database string) (*mcp.CallToolResult, ListTablesOutput, error) {
	tables, err := ListTableNames(ctx, connector)
	if err != nil {
		return nil, ListTablesOutput{}, err
	}

	lines := append([]string{"Tables_in_" + database}, tables...)
	output := ListTablesOutput{Tables: tables}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.Join(lines, "\n")},
		},
	}, output, nil
}

// ListTableNames returns the base tables visible to the configured
// credential, in the order defined by the introspection query. Shared
// with the resource listing. The slice is empty, never nil: no tables
// is still a successful listing.
func ListTableNames(ctx context.Context, connector *client.Connector) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tables := []string{}

	err := connector.WithConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, dialectFor(connector.DriverName()).listTablesQuery)
		if err != nil {
			return &ExecutionError{Err: err}
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return &ExecutionError{Err: fmt.Errorf("scan error: %v", err)}
			}
			tables = append(tables, name)
		}
		if err := rows.Err(); err != nil {
			return &ExecutionError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}
