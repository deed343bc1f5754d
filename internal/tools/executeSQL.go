package tools

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ExecuteSQLInput struct {
	Statement string `json:"statement" jsonschema:"required" jsonschema_description:"The SQL statement to execute"`
}

type ExecuteSQLOutput struct {
	Results      string `json:"results" jsonschema_description:"Rows for statements that produce them, otherwise a rows-affected summary"`
	RowsAffected int64  `json:"rows_affected" jsonschema_description:"Rows affected by a non-SELECT statement"`
}

// GetExecuteSQLTool runs the caller's statement as-is. There is no
// allow-list or sanitization: the configured database credential is
// the permission boundary.
func GetExecuteSQLTool(connector *client.Connector) *ToolDefinition[ExecuteSQLInput, ExecuteSQLOutput] {
	return NewToolDefinition[ExecuteSQLInput, ExecuteSQLOutput](
		"execute_sql",
		"Execute an SQL statement on the SQL Server database.",
		func(ctx context.Context, req *mcp.CallToolRequest, input ExecuteSQLInput) (*mcp.CallToolResult, ExecuteSQLOutput, error) {
			return executeSQLHandler(ctx, input, connector)
		},
	)
}

func executeSQLHandler(ctx context.Context, input ExecuteSQLInput, connector *client.Connector) (*mcp.CallToolResult, ExecuteSQLOutput, error) {
	if stripCommentLines(input.Statement) == "" {
		return nil, ExecuteSQLOutput{}, &InvocationError{Msg: "statement must not be empty"}
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var output ExecuteSQLOutput

	err := connector.WithConn(ctx, func(db *sql.DB) error {
		if isSelectStatement(input.Statement) {
			rows, err := db.QueryContext(ctx, input.Statement)
			if err != nil {
				return &ExecutionError{Err: err}
			}
			defer rows.Close()

			columns, data, err := scanAllRows(rows)
			if err != nil {
				return err
			}
			output.Results = renderRows(columns, data)
			return nil
		}

		result, err := db.ExecContext(ctx, input.Statement)
		if err != nil {
			return &ExecutionError{Err: err}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			affected = 0
		}
		output.RowsAffected = affected
		output.Results = fmt.Sprintf("Query executed successfully. Rows affected: %d", affected)
		return nil
	})
	if err != nil {
		return nil, ExecuteSQLOutput{}, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: output.Results},
		},
	}, output, nil
}
