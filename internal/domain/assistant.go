package domain

import "context"

// AssistantStopReason signals how the assistant finished one turn.
type AssistantStopReason string

const (
	AssistantStopReason_Completed AssistantStopReason = "completed"
	AssistantStopReason_ToolCall  AssistantStopReason = "tool_call"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolCall
}

// AssistantTurnRequest is the domain request for one assistant turn.
type AssistantTurnRequest struct {
	Model    string
	Messages []AssistantMessage
	// Optional generation settings.
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
	Tools       []ToolDefinition
}

// AssistantTurnResult is the outcome of one assistant turn: either a final
// text answer or a request to execute tools.
type AssistantTurnResult struct {
	StopReason AssistantStopReason
	Text       string
	ToolCalls  []ToolCall
	Usage      AssistantUsage
}

// Assistant defines assistant interaction in domain terms.
type Assistant interface {
	// RunTurn executes one assistant turn and returns its result.
	RunTurn(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResult, error)
}
