package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dbmcp/mssql-mcp-server/internal/client"
	"github.com/dbmcp/mssql-mcp-server/internal/config"
	"github.com/dbmcp/mssql-mcp-server/internal/logger"
	"github.com/dbmcp/mssql-mcp-server/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type MCPServerConfig struct {
	Version string
	DB      config.Config
}

func NewMCPServer(cfg MCPServerConfig) *mcp.Server {
	impl := &mcp.Implementation{Name: "mssql-mcp-server", Version: cfg.Version}
	server := mcp.NewServer(impl, nil)

	connector := client.NewConnector(cfg.DB)

	// Tools share the connector, nothing else. No connection is opened
	// until the first invocation.
	tools.RegisterTools(server, connector, cfg.DB.Database)
	registerTableResources(server, connector)

	return server
}

type StdioServerConfig struct {
	Version string
	DB      config.Config
}

func RunStdioServer(cfg StdioServerConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := NewMCPServer(MCPServerConfig{
		Version: cfg.Version,
		DB:      cfg.DB,
	})

	logger.Info("MSSQL MCP server running", "target", cfg.DB.Redacted())

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
