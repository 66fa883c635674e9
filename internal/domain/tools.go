package domain

import "context"

// ToolCall contains one tool invocation requested by the assistant. The ID
// is the provider-supplied correlation id that ties the eventual result back
// to the exact call in the next turn.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolField represents one tool input field with its explicit type tag.
type ToolField struct {
	Type        string
	Description string
	Required    bool
	Enum        []string
	Items       *ToolItems
}

// ToolItems describes the element shape of an array field.
type ToolItems struct {
	Type   string
	Enum   []string
	Fields map[string]ToolField
}

// ToolInput describes the tool input shape.
type ToolInput struct {
	Type   string
	Fields map[string]ToolField
}

// ToolDefinition describes one tool that can be used by the assistant.
type ToolDefinition struct {
	Name        string
	Description string
	Input       ToolInput
}

// ToolExecutionRecord captures one dispatched tool execution for
// observability. The result payload is retained as produced, never
// re-validated.
type ToolExecutionRecord struct {
	ToolName  string         `json:"toolName"`
	Args      map[string]any `json:"args"`
	Timestamp int64          `json:"timestamp"`
	Result    any            `json:"result,omitempty"`
}

// Tool represents one executable assistant tool.
type Tool interface {
	// Definition returns the tool definition.
	Definition() ToolDefinition
	// StatusMessage returns a user-friendly status line for this tool.
	StatusMessage() string
	// Execute runs the tool with validated arguments.
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// ToolInvoker resolves and executes tools for the orchestration loop. It is
// implemented by the in-process registry and by the remote tool-server
// client.
type ToolInvoker interface {
	// ListTools returns the definitions of every available tool.
	ListTools(ctx context.Context) ([]ToolDefinition, error)

	// Execute dispatches one tool call. A zero-valued record (empty
	// ToolName) means the call never reached an executor, e.g. the tool
	// name is unknown.
	Execute(ctx context.Context, call ToolCall) (ToolExecutionRecord, error)
}
