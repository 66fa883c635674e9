package domain

// StreamEventType represents the type of event in an orchestration stream.
type StreamEventType string

const (
	StreamEventType_ToolStart    StreamEventType = "tool_start"
	StreamEventType_ToolComplete StreamEventType = "tool_complete"
	StreamEventType_Response     StreamEventType = "response"
	StreamEventType_Done         StreamEventType = "done"
	StreamEventType_Error        StreamEventType = "error"
)

// StreamEvent is one element of the tagged event union emitted by an
// orchestration run. A stream terminates with either a done or an error
// event, never both.
type StreamEvent struct {
	Type StreamEventType `json:"type"`
	Data any             `json:"data"`
}

// ToolCompleteData is the payload of a tool_complete event.
type ToolCompleteData struct {
	ToolName string `json:"toolName"`
}

// DoneData is the payload of a done event.
type DoneData struct {
	ToolExecutions []ToolExecutionRecord `json:"toolExecutions"`
}
