// Package assistant hosts the tool registry: the explicit, build-once
// collection of tools the orchestration loop can dispatch to, plus the
// schema validation applied to every call before execution.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/rawg"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ToolManager manages the collection of assistant tools. The set is fixed at
// construction time; there is no runtime mutation.
type ToolManager struct {
	tools        map[string]domain.Tool
	timeProvider domain.CurrentTimeProvider
}

// NewToolManager creates a new ToolManager with the provided tools.
func NewToolManager(timeProvider domain.CurrentTimeProvider, toolList ...domain.Tool) ToolManager {
	toolMap := make(map[string]domain.Tool)
	for _, tool := range toolList {
		toolMap[tool.Definition().Name] = tool
	}
	return ToolManager{
		tools:        toolMap,
		timeProvider: timeProvider,
	}
}

// StatusMessage returns a status message about the tool execution.
func (m ToolManager) StatusMessage(toolName string) string {
	if tool, ok := m.tools[toolName]; ok {
		if msg := tool.StatusMessage(); msg != "" {
			return msg
		}
	}
	return "⏳ Processing request..."
}

// List returns all registered tool definitions sorted by name.
func (m ToolManager) List() []domain.ToolDefinition {
	res := make([]domain.ToolDefinition, 0, len(m.tools))
	for _, tool := range m.tools {
		res = append(res, tool.Definition())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// ListTools implements domain.ToolInvoker.
func (m ToolManager) ListTools(_ context.Context) ([]domain.ToolDefinition, error) {
	return m.List(), nil
}

// Execute dispatches one tool call. Once the tool name resolves, exactly one
// execution record is produced, timestamped at dispatch; argument or
// execution failures land in the record result so the model can react to
// them. A configuration error aborts the run instead.
func (m ToolManager) Execute(ctx context.Context, call domain.ToolCall) (domain.ToolExecutionRecord, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("tool.function", call.Name),
		),
	)
	defer span.End()

	tool, exists := m.tools[call.Name]
	if !exists {
		err := domain.NewToolNotFoundErr(fmt.Sprintf("Unknown tool: %s", call.Name))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolExecutionRecord{}, err
	}

	args := map[string]any{}
	var decodeErr error
	if call.Arguments != "" {
		decodeErr = json.Unmarshal([]byte(call.Arguments), &args)
	}

	record := domain.ToolExecutionRecord{
		ToolName:  call.Name,
		Args:      args,
		Timestamp: m.timeProvider.Now().UnixMilli(),
	}

	if decodeErr != nil {
		err := domain.NewValidationErr(fmt.Sprintf("tool arguments must be a JSON object: %v", decodeErr))
		record.Result = map[string]any{"error": err.Error()}
		telemetry.RecordErrorAndStatus(span, err)
		RecordToolExecution(spanCtx, call.Name, false)
		return record, domain.NewToolExecutionErr(call.Name, err)
	}

	if err := ValidateArgs(tool.Definition().Input, args); err != nil {
		record.Result = map[string]any{"error": err.Error()}
		telemetry.RecordErrorAndStatus(span, err)
		RecordToolExecution(spanCtx, call.Name, false)
		return record, domain.NewToolExecutionErr(call.Name, err)
	}

	result, err := tool.Execute(spanCtx, args)
	if err != nil {
		record.Result = map[string]any{"error": err.Error()}
		telemetry.RecordErrorAndStatus(span, err)
		RecordToolExecution(spanCtx, call.Name, false)

		var configErr *domain.ConfigErr
		if errors.As(err, &configErr) {
			return record, err
		}
		return record, domain.NewToolExecutionErr(call.Name, err)
	}

	record.Result = result
	RecordToolExecution(spanCtx, call.Name, true)
	return record, nil
}

// InitToolRegistry initializes the tool registry with the built-in tools.
type InitToolRegistry struct {
	GameClient   rawg.Client                `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the tool manager in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewToolManager(
		i.TimeProvider,
		tools.NewGameDataFetcherTool(i.GameClient),
		tools.NewCalculationTool(),
		tools.NewRatingAverageTool(),
	))
	return ctx, nil
}
