// Package mcp exposes the tool registry as a Model Context Protocol server
// over the streamable HTTP transport, so MCP-native clients can call the
// same tools the chat orchestration uses.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "rawg-game-data"
	ServerVersion = "1.0.0"
)

// NewServer builds an MCP server serving every tool known to the invoker.
func NewServer(ctx context.Context, invoker domain.ToolInvoker) (*mcpsdk.Server, error) {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	definitions, err := invoker.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	for _, def := range definitions {
		server.AddTool(&mcpsdk.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Input.JSONSchema(),
		}, toolHandler(invoker, def.Name))
	}
	return server, nil
}

// NewHandler wraps the MCP server in the streamable HTTP transport handler.
func NewHandler(server *mcpsdk.Server) http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return server
	}, nil)
}

// toolHandler adapts one registry tool to the MCP call convention: failures
// are reported in-band as error results, never as protocol errors.
func toolHandler(invoker domain.ToolInvoker, name string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		record, err := invoker.Execute(ctx, domain.ToolCall{
			Name:      name,
			Arguments: string(req.Params.Arguments),
		})
		if err != nil {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("Error: %v", err)}},
			}, nil
		}

		text, err := json.MarshalIndent(record.Result, "", "  ")
		if err != nil {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("Error: %v", err)}},
			}, nil
		}
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(text)}},
		}, nil
	}
}
