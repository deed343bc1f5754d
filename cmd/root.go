package main

import (
	"fmt"
	"os"

	"github.com/dbmcp/mssql-mcp-server/internal/config"
	"github.com/dbmcp/mssql-mcp-server/internal/logger"
	"github.com/dbmcp/mssql-mcp-server/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mssql-mcp-server",
	Short: "MCP server exposing a Microsoft SQL Server database",
	Long:  `A Model Context Protocol (MCP) server exposing SQL Server tools for AI clients.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Optional .env file with MSSQL_* variables")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (default: stderr only)")
	rootCmd.PersistentFlags().String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")

	stdioCmd := &cobra.Command{
		Use:   "stdio",
		Short: "Run over stdio transport (for local MCP clients)",
		RunE:  runStdioServer,
	}
	rootCmd.AddCommand(stdioCmd)

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "Run over HTTP transport (for remote clients)",
		RunE:  runHTTPServer,
	}
	rootCmd.AddCommand(httpCmd)
}

func runStdioServer(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort: a .env next to the binary is optional
		_ = godotenv.Load()
	}

	if err := logger.Initialize(logger.Config{
		Level:      logger.ParseLogLevel(logLevel),
		OutputFile: logFile,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Shutdown()

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	return server.RunStdioServer(server.StdioServerConfig{
		Version: version,
		DB:      cfg,
	})
}

func runHTTPServer(cmd *cobra.Command, args []string) error {
	// TODO: wire mcp.StreamableHTTPHandler once a remote deployment needs it
	return fmt.Errorf("HTTP transport not implemented yet")
}
