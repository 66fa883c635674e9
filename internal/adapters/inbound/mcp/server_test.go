package mcp

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func connectTestSession(t *testing.T, invoker domain.ToolInvoker) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()

	server, err := NewServer(ctx, invoker)
	require.NoError(t, err)

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "test"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

func TestNewServer_ListsRegistryTools(t *testing.T) {
	invoker := &domain.MockToolInvoker{}
	invoker.On("ListTools", mock.Anything).Return([]domain.ToolDefinition{
		{
			Name:        "fetch_game_data",
			Description: "Fetch video game data",
			Input: domain.ToolInput{
				Type: "object",
				Fields: map[string]domain.ToolField{
					"action": {Type: "string", Required: true, Enum: []string{"search", "details"}},
				},
			},
		},
		{
			Name:        "execute_calculation",
			Description: "Perform statistical calculations",
			Input:       domain.ToolInput{Type: "object", Fields: map[string]domain.ToolField{}},
		},
	}, nil).Once()

	session := connectTestSession(t, invoker)

	listed, err := session.ListTools(context.Background(), &mcpsdk.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, listed.Tools, 2)

	names := make([]string, len(listed.Tools))
	for i, tool := range listed.Tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "fetch_game_data")
	assert.Contains(t, names, "execute_calculation")

	invoker.AssertExpectations(t)
}

func TestToolHandler_CallTool(t *testing.T) {
	tests := map[string]struct {
		setup    func(invoker *domain.MockToolInvoker)
		args     map[string]any
		validate func(t *testing.T, result *mcpsdk.CallToolResult)
	}{
		"success-returns-indented-json": {
			setup: func(invoker *domain.MockToolInvoker) {
				invoker.On("Execute", mock.Anything, mock.MatchedBy(func(call domain.ToolCall) bool {
					return call.Name == "fetch_game_data"
				})).Return(domain.ToolExecutionRecord{
					ToolName: "fetch_game_data",
					Args:     map[string]any{"action": "genres"},
					Result:   map[string]any{"count": 19},
				}, nil).Once()
			},
			args: map[string]any{"action": "genres"},
			validate: func(t *testing.T, result *mcpsdk.CallToolResult) {
				assert.False(t, result.IsError)
				require.Len(t, result.Content, 1)
				text := result.Content[0].(*mcpsdk.TextContent).Text
				assert.JSONEq(t, `{"count":19}`, text)
			},
		},
		"failure-is-reported-in-band": {
			setup: func(invoker *domain.MockToolInvoker) {
				invoker.On("Execute", mock.Anything, mock.Anything).
					Return(domain.ToolExecutionRecord{}, domain.NewValidationErr("game_id is required for details action")).Once()
			},
			args: map[string]any{"action": "details"},
			validate: func(t *testing.T, result *mcpsdk.CallToolResult) {
				assert.True(t, result.IsError)
				require.Len(t, result.Content, 1)
				text := result.Content[0].(*mcpsdk.TextContent).Text
				assert.Contains(t, text, "Error: ")
				assert.Contains(t, text, "game_id is required")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			invoker := &domain.MockToolInvoker{}
			invoker.On("ListTools", mock.Anything).Return([]domain.ToolDefinition{
				{Name: "fetch_game_data", Description: "Fetch video game data", Input: domain.ToolInput{Type: "object"}},
			}, nil).Once()
			tt.setup(invoker)

			session := connectTestSession(t, invoker)
			result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
				Name:      "fetch_game_data",
				Arguments: tt.args,
			})
			require.NoError(t, err)
			tt.validate(t, result)

			invoker.AssertExpectations(t)
		})
	}
}
