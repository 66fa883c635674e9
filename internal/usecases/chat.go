package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/common"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

const (
	// Keep tool-calling deterministic to reduce malformed function arguments.
	CHAT_TEMPERATURE = 0.2
	CHAT_TOP_P       = 0.7

	CHAT_MAX_TOKENS = 4096

	// Buffer size of the event channel returned to callers.
	STREAM_EVENT_BUFFER = 16
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// Chat defines the interface for the Chat use case
type Chat interface {
	// Execute runs one conversational turn and streams orchestration events
	Execute(ctx context.Context, userMessage string, history []domain.ChatMessage) (<-chan domain.StreamEvent, error)
}

// ChatImpl is the implementation of the Chat use case
type ChatImpl struct {
	assistant     domain.Assistant
	toolInvoker   domain.ToolInvoker
	timeProvider  domain.CurrentTimeProvider
	model         string
	maxToolCycles int
}

// NewChatImpl creates a new instance of ChatImpl
func NewChatImpl(
	assistant domain.Assistant,
	toolInvoker domain.ToolInvoker,
	timeProvider domain.CurrentTimeProvider,
	model string,
	maxToolCycles int,
) ChatImpl {
	return ChatImpl{
		assistant:     assistant,
		toolInvoker:   toolInvoker,
		timeProvider:  timeProvider,
		model:         model,
		maxToolCycles: maxToolCycles,
	}
}

// Execute validates the request, assembles the model context and starts the
// orchestration loop. The returned channel is closed when the run terminates;
// a run ends with either a done or an error event, never both.
func (c ChatImpl) Execute(ctx context.Context, userMessage string, history []domain.ChatMessage) (<-chan domain.StreamEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(userMessage) == "" {
		err := domain.NewValidationErr("Message is required")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	tools, err := c.toolInvoker.ListTools(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	systemPrompt, err := c.buildSystemPrompt()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	messages := make([]domain.AssistantMessage, 0, len(systemPrompt)+len(history)+1)
	messages = append(messages, systemPrompt...)
	for _, msg := range domain.NormalizeHistory(history) {
		messages = append(messages, domain.AssistantMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	messages = append(messages, domain.AssistantMessage{
		Role:    domain.ChatRole_User,
		Content: userMessage,
	})

	req := domain.AssistantTurnRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: common.Ptr(CHAT_TEMPERATURE),
		TopP:        common.Ptr(CHAT_TOP_P),
		MaxTokens:   common.Ptr(CHAT_MAX_TOKENS),
		Tools:       tools,
	}

	events := make(chan domain.StreamEvent, STREAM_EVENT_BUFFER)
	go c.runConversation(ctx, req, events)
	return events, nil
}

// runConversation drives the model/tool loop until the assistant produces a
// final text answer or the cycle ceiling is reached.
func (c ChatImpl) runConversation(ctx context.Context, req domain.AssistantTurnRequest, events chan<- domain.StreamEvent) {
	defer close(events)
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	records := []domain.ToolExecutionRecord{}
	for cycle := 0; ; cycle++ {
		if cycle >= c.maxToolCycles {
			err := domain.NewLoopLimitErr(fmt.Sprintf("stopped after %d tool cycles without a final answer", c.maxToolCycles))
			telemetry.RecordErrorAndStatus(span, err)
			c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_Error, Data: err.Error()})
			return
		}

		result, err := c.assistant.RunTurn(spanCtx, req)
		if telemetry.RecordErrorAndStatus(span, err) {
			c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_Error, Data: err.Error()})
			return
		}
		RecordLLMTokensUsed(spanCtx, result.Usage.PromptTokens, result.Usage.CompletionTokens)

		if result.StopReason == domain.AssistantStopReason_ToolCall && len(result.ToolCalls) > 0 {
			// Execute one call per cycle; remaining calls are re-requested by
			// the model on the next turn once it sees this result.
			call := result.ToolCalls[0]
			if call.ID == "" {
				// Some providers omit call ids; the tool turn still needs
				// a correlation id.
				call.ID = uuid.NewString()
			}
			RecordToolCycle(spanCtx, call.Name)

			record, execErr := c.toolInvoker.Execute(spanCtx, call)
			if execErr != nil {
				var configErr *domain.ConfigErr
				if errors.As(execErr, &configErr) {
					telemetry.RecordErrorAndStatus(span, execErr)
					c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_Error, Data: execErr.Error()})
					return
				}
			}

			// An empty record means the tool never ran (unknown name); the
			// failure is fed back to the model without surfacing tool events.
			var payload any
			if record.ToolName != "" {
				records = append(records, record)
				if !c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_ToolStart, Data: record}) {
					return
				}
				if !c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_ToolComplete, Data: domain.ToolCompleteData{ToolName: record.ToolName}}) {
					return
				}
				payload = record.Result
			} else {
				// A zero record with a nil error is out of contract for an
				// invoker; still feed something sensible back to the model.
				msg := "tool execution failed"
				if execErr != nil {
					msg = execErr.Error()
				}
				payload = map[string]any{"error": msg}
			}

			req.Messages = append(req.Messages,
				domain.AssistantMessage{
					Role:      domain.ChatRole_Assistant,
					ToolCalls: []domain.ToolCall{call},
				},
				domain.AssistantMessage{
					Role:       domain.ChatRole_Tool,
					ToolCallID: &call.ID,
					Content:    encodeToolResult(payload),
				},
			)
			continue
		}

		text := strings.TrimSpace(result.Text)
		if text == "" {
			text = "No response generated"
		}
		if !c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_Response, Data: text}) {
			return
		}
		c.emit(ctx, events, domain.StreamEvent{Type: domain.StreamEventType_Done, Data: domain.DoneData{ToolExecutions: records}})
		return
	}
}

// emit delivers one event unless the caller has abandoned the stream.
func (c ChatImpl) emit(ctx context.Context, events chan<- domain.StreamEvent, event domain.StreamEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// buildSystemPrompt loads the embedded chat prompt and injects the current date.
func (c ChatImpl) buildSystemPrompt() ([]domain.AssistantMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AssistantMessage{}
	err = yaml.NewDecoder(file).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chat prompt: %w", err)
	}
	for i, msg := range messages {
		if msg.Role == domain.ChatRole_System {
			messages[i].Content = fmt.Sprintf(
				msg.Content,
				c.timeProvider.Now().Format(time.DateOnly),
			)
		}
	}
	return messages, nil
}

// encodeToolResult renders a tool result for the model context. TOON keeps
// tabular API payloads compact; JSON is the fallback for values it cannot
// represent.
func encodeToolResult(payload any) string {
	encoded, err := toon.MarshalString(payload, toon.WithLengthMarkers(true))
	if err == nil {
		return encoded
	}
	raw, jsonErr := json.Marshal(payload)
	if jsonErr != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(raw)
}

// InitChat is the initializer for the Chat use case
type InitChat struct {
	Assistant    domain.Assistant           `resolve:""`
	ToolInvoker  domain.ToolInvoker         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Model        string                     `config:"LLM_MODEL"`
	// Maximum number of tool cycles per chat run
	// It restricts how many times the Assistant can invoke tools before the run is aborted
	MaxToolCycles int `config:"LLM_MAX_TOOL_CYCLES" default:"10"`
}

// Initialize registers the Chat use case in the dependency container
func (i InitChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[Chat](NewChatImpl(
		i.Assistant,
		i.ToolInvoker,
		i.TimeProvider,
		i.Model,
		i.MaxToolCycles,
	))
	return ctx, nil
}
