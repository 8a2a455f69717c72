// ABOUTME: MCP tool definitions and registration for the research server
// ABOUTME: Exposes web search, saving and full research turns to LLM agents
package mcp

import (
	"github.com/harper/research/internal/core"
	"github.com/harper/research/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Tool names
const (
	ToolWebSearch    = "web_search"
	ToolSaveResearch = "save_research"
	ToolResearch     = "research"
)

// ServerName is the name advertised to MCP clients
const ServerName = "Research Assistant"

// NewServer creates an MCP server with every research tool registered
func NewServer(version string, dispatcher *core.Dispatcher, searcher core.Searcher, file *storage.ResearchFile) *mcpserver.MCPServer {
	server := mcpserver.NewMCPServer(ServerName, version)
	RegisterTools(server, dispatcher, searcher, file)
	return server
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, dispatcher *core.Dispatcher, searcher core.Searcher, file *storage.ResearchFile) *Handlers {
	handlers := &Handlers{
		dispatcher: dispatcher,
		searcher:   searcher,
		file:       file,
	}

	// 1. web_search - raw Wikipedia + DuckDuckGo results, no LLM involved
	server.AddTool(mcp.Tool{
		Name:        ToolWebSearch,
		Description: "Search Wikipedia and DuckDuckGo and return the combined result text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.WebSearch)

	// 2. save_research - append text to the research output file
	server.AddTool(mcp.Tool{
		Name:        ToolSaveResearch,
		Description: "Append text as a timestamped block to the research output file.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to save",
				},
				"file": map[string]interface{}{
					"type":        "string",
					"description": "Optional destination file (default: the configured research output file)",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.SaveResearch)

	// 3. research - one full assistant turn: plan, search or save, answer
	server.AddTool(mcp.Tool{
		Name:        ToolResearch,
		Description: "Handle a natural-language research request. The assistant either searches and writes a detailed answer, or saves text (\"save that\" saves the previous answer).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"request": map[string]interface{}{
					"type":        "string",
					"description": "What to research or do",
				},
			},
			Required: []string{"request"},
		},
	}, handlers.Research)

	return handlers
}
