// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes search, save and full research turns to LLM agents via stdio
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/research/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the research assistant as an MCP (Model Context Protocol) server,
enabling LLM agents like Claude to search, save and run research turns
via stdio. All research calls share one result store, so a "save that"
request saves the answer from the previous research call.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  research mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "research": {
  #       "command": "research",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}
	logger := s.app.Logger

	server := mcp.NewServer(versionInfo.Version, s.app.Dispatcher, s.app.Searcher, s.app.File)

	logger.Info("MCP server starting on stdio", "version", versionInfo.String(), "output", s.app.File.Path())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
