package tools

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadTableRowLimit bounds how many rows a single read_table call
// returns.
const ReadTableRowLimit = 100

type ReadTableInput struct {
	TableName string `json:"table_name" jsonschema:"required" jsonschema_description:"Name of the table to read, optionally schema-qualified (e.g. 'dbo.users')"`
}

type ReadTableOutput struct {
	Results string `json:"results" jsonschema_description:"Table contents: comma-joined column header followed by one line per row"`
}

func GetReadTableTool(connector *client.Connector) *ToolDefinition[ReadTableInput, ReadTableOutput] {
	return NewToolDefinition[ReadTableInput, ReadTableOutput](
		"read_table",
		fmt.Sprintf("Read up to %d rows from a table.", ReadTableRowLimit),
		func(ctx context.Context, req *mcp.CallToolRequest, input ReadTableInput) (*mcp.CallToolResult, ReadTableOutput, error) {
			return readTableHandler(ctx, input, connector)
		},
	)
}

func readTableHandler(ctx context.Context, input ReadTableInput, connector *client.Connector) (*mcp.CallToolResult, ReadTableOutput, error) {
	text, err := ReadTableText(ctx, connector, input.TableName)
	if err != nil {
		return nil, ReadTableOutput{}, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, ReadTableOutput{Results: text}, nil
}

// ReadTableText validates the table name, reads its first rows and
// renders them. Validation happens before any connection is opened so
// a malformed identifier never reaches the database. Shared with the
// mssql:// resource handler.
func ReadTableText(ctx context.Context, connector *client.Connector, tableName string) (string, error) {
	if err := validateTableName(tableName); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := dialectFor(connector.DriverName()).limitedSelect(quoteIdentifier(tableName), ReadTableRowLimit)

	var text string
	err := connector.WithConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return &ExecutionError{Err: err}
		}
		defer rows.Close()

		columns, data, err := scanAllRows(rows)
		if err != nil {
			return err
		}
		text = renderRows(columns, data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
