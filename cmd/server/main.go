// ABOUTME: Main entry point for the research MCP server with stdio transport
// ABOUTME: Wires search, save and the dispatcher, then serves all tools
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/research/internal/app"
	"github.com/harper/research/internal/config"
	"github.com/harper/research/internal/logging"
	"github.com/harper/research/internal/mcp"
)

var version = "dev"

func main() {
	// Load .env file if it exists (for API keys)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "error").Fatal("invalid configuration", "err", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	a := app.New(cfg, logger)
	if err := a.Connect(context.Background()); err != nil {
		logger.Fatal("failed to initialize LLM client", "err", err)
	}

	server := mcp.NewServer(version, a.Dispatcher, a.Searcher, a.File)

	logger.Info("research MCP server starting on stdio", "provider", cfg.Provider, "output", cfg.OutputFile)
	if err := mcpserver.ServeStdio(server); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
