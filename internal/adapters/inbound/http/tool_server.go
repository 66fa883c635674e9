package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	mcpadapter "github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/rs/cors"
)

// AuthHeader carries the shared secret expected on every /v1/* request.
const AuthHeader = "x-authentication-secret"

// ToolServer exposes the tool registry over the MCP-style HTTP protocol so
// the chat server (or any MCP-aware gateway) can call tools remotely.
type ToolServer struct {
	Port         int                   `config:"TOOLSERVER_PORT" default:"8081"`
	SharedSecret string                `config:"TOOLSERVER_SHARED_SECRET" default:""`
	Logger       *log.Logger           `resolve:""`
	Registry     assistant.ToolManager `resolve:""`
}

// Run starts the HTTP server for the ToolServer.
func (api ToolServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/tools", api.requireSecret(http.HandlerFunc(api.handleToolsList)))
	mux.Handle("POST /v1/tools/execute", api.requireSecret(http.HandlerFunc(api.handleToolExecution)))
	mux.HandleFunc("/.well-known/mcp", handleDiscovery)
	mux.HandleFunc("GET /health", HealthHandler)

	mcpServer, err := mcpadapter.NewServer(ctx, api.Registry)
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}
	mux.Handle("/mcp", mcpadapter.NewHandler(mcpServer))

	// Any unmatched path serves the info document, mirroring the original
	// worker routing.
	mux.HandleFunc("/", handleRoot)

	h := telemetry.Middleware("gamechat-tools")(mux)
	h = cors.AllowAll().Handler(h)

	return serve(ctx, api.Logger, "ToolServer", api.Port, h)
}

// IsReady checks if the ToolServer is ready by performing a health check.
func (api ToolServer) IsReady(ctx context.Context) error {
	return checkHealth(api.Port)
}

// requireSecret enforces the shared secret header. The server is open when
// no secret is configured, matching the original development-mode behavior.
func (api ToolServer) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.SharedSecret != "" && r.Header.Get(AuthHeader) != api.SharedSecret {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func (api ToolServer) handleToolsList(w http.ResponseWriter, r *http.Request) {
	definitions, err := api.Registry.ListTools(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	tools := make([]toolDescriptor, len(definitions))
	for i, def := range definitions {
		tools[i] = toolDescriptor{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Input.JSONSchema(),
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"tools": tools})
}

type toolExecutionRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolExecutionResponse struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

func (api ToolServer) handleToolExecution(w http.ResponseWriter, r *http.Request) {
	req := toolExecutionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondToolError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	record, err := api.Registry.Execute(r.Context(), domain.ToolCall{
		Name:      req.Name,
		Arguments: string(req.Arguments),
	})
	if err != nil {
		var notFoundErr *domain.ToolNotFoundErr
		if errors.As(err, &notFoundErr) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		respondToolError(w, err)
		return
	}

	text, err := json.MarshalIndent(record.Result, "", "  ")
	if err != nil {
		respondToolError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toolExecutionResponse{
		Content: []contentBlock{{Type: "text", Text: string(text)}},
	})
}

// respondToolError reports a tool failure in the MCP in-band error format.
func respondToolError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusInternalServerError, toolExecutionResponse{
		Content: []contentBlock{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
		IsError: true,
	})
}

func handleDiscovery(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"protocol": "mcp",
		"version":  mcpadapter.ServerVersion,
		"server": map[string]any{
			"name":        mcpadapter.ServerName,
			"version":     mcpadapter.ServerVersion,
			"description": "MCP server for RAWG video game data",
		},
		"capabilities": map[string]any{
			"tools": true,
		},
		"endpoints": map[string]any{
			"tools":   "/v1/tools",
			"execute": "/v1/tools/execute",
		},
	})
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"name":        "RAWG MCP Server",
		"version":     mcpadapter.ServerVersion,
		"description": "Model Context Protocol server for video game data",
		"discovery":   "/.well-known/mcp",
	})
}
