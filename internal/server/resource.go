package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/dbmcp/mssql-mcp-server/internal/logger"
	"github.com/dbmcp/mssql-mcp-server/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const tableResourceScheme = "mssql://"

// registerTableResources exposes table contents under
// mssql://<table>/data, mirroring the read_table tool for clients
// that browse resources instead of calling tools.
func registerTableResources(s *mcp.Server, connector *client.Connector) {
	template := &mcp.ResourceTemplate{
		Name:        "table-data",
		URITemplate: tableResourceScheme + "{table}/data",
		MIMEType:    "text/plain",
		Description: "Rows of a table in the configured database",
	}

	s.AddResourceTemplate(template, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		table, err := tableFromURI(req.Params.URI)
		if err != nil {
			return nil, err
		}

		text, err := tools.ReadTableText(ctx, connector, table)
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     text,
				},
			},
		}, nil
	})

	s.AddReceivingMiddleware(resourceListMiddleware(connector))
}

// resourceListMiddleware answers resources/list with one concrete
// entry per base table, enumerated at request time. A listing failure
// yields an empty list rather than a protocol error, so browsing
// clients degrade the same way the tools do.
func resourceListMiddleware(connector *client.Connector) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != "resources/list" {
				return next(ctx, method, req)
			}

			tables, err := tools.ListTableNames(ctx, connector)
			if err != nil {
				logger.Error("failed to list table resources", err)
				return &mcp.ListResourcesResult{Resources: []*mcp.Resource{}}, nil
			}
			return &mcp.ListResourcesResult{Resources: tableResources(tables)}, nil
		}
	}
}

func tableResources(tables []string) []*mcp.Resource {
	resources := make([]*mcp.Resource, 0, len(tables))
	for _, table := range tables {
		resources = append(resources, &mcp.Resource{
			URI:         tableResourceScheme + table + "/data",
			Name:        "Table: " + table,
			MIMEType:    "text/plain",
			Description: "Data in table: " + table,
		})
	}
	return resources
}

func tableFromURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, tableResourceScheme) {
		return "", fmt.Errorf("invalid resource URI scheme: %s", uri)
	}
	parts := strings.Split(strings.TrimPrefix(uri, tableResourceScheme), "/")
	if len(parts) != 2 || parts[1] != "data" || parts[0] == "" {
		return "", fmt.Errorf("invalid resource URI format, expected mssql://<table>/data: %s", uri)
	}
	return parts[0], nil
}
