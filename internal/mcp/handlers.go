// ABOUTME: MCP tool handler implementations for the research server
// ABOUTME: Tool failures are returned as tool errors, never as protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/research/internal/core"
	"github.com/harper/research/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	dispatcher *core.Dispatcher
	searcher   core.Searcher
	file       *storage.ResearchFile
}

// WebSearch handles the web_search tool
func (h *Handlers) WebSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query argument is required and must be a non-empty string"), nil
	}

	results, err := h.searcher.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return mcp.NewToolResultText(results), nil
}

// SaveResearch handles the save_research tool
func (h *Handlers) SaveResearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	destination := request.GetString("file", h.file.Path())

	message, err := h.file.SaveTo(ctx, text, destination)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"status":  "saved",
		"message": message,
		"file":    destination,
	}
	return jsonResult(response)
}

// Research handles the research tool by running one dispatcher turn
func (h *Handlers) Research(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := request.RequireString("request")
	if err != nil || strings.TrimSpace(req) == "" {
		return mcp.NewToolResultError("request argument is required and must be a non-empty string"), nil
	}

	turn, err := h.dispatcher.Turn(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := map[string]interface{}{
		"turn_id": turn.TurnID,
		"action":  turn.Plan.Action,
		"input":   turn.Plan.Input,
		"output":  turn.Output(),
	}
	return jsonResult(response)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
