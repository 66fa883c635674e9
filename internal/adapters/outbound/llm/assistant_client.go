package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// AssistantClient adapts APIClient to the domain assistant interface.
type AssistantClient struct {
	client APIClient
}

// NewAssistantClientAdapter creates a new adapter.
func NewAssistantClientAdapter(client APIClient) AssistantClient {
	return AssistantClient{client: client}
}

// RunTurn implements domain.Assistant.
func (a AssistantClient) RunTurn(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if err != nil {
		err = classifyProviderError(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResult{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResult{}, err
	}

	choice := resp.Choices[0]
	result := domain.AssistantTurnResult{
		StopReason: domain.AssistantStopReason_Completed,
		Text:       choice.Message.Content,
	}
	if choice.FinishReason == "tool_calls" || len(choice.Message.ToolCalls) > 0 {
		result.StopReason = domain.AssistantStopReason_ToolCall
		for _, tc := range choice.Message.ToolCalls {
			result.ToolCalls = append(result.ToolCalls, domain.ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
		}
	}
	if resp.Usage != nil {
		result.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return result, nil
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
		Messages:    make([]ChatMessage, len(req.Messages)),
		Tools:       make([]Tool, len(req.Tools)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		for _, toolCall := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   toolCall.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      toolCall.Name,
					Arguments: toolCall.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	for i, def := range req.Tools {
		adapterReq.Tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Description: def.Description,
				Name:        def.Name,
				Parameters:  def.Input.JSONSchema(),
			},
		}
	}

	return adapterReq
}

// InitAssistantClient initializes the assistant client dependency.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"LLM_BASE_URL"`
	APIKey     string       `config:"LLM_API_KEY" default:""`
}

// Initialize registers the assistant interface.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	adapter := NewAssistantClientAdapter(NewAPIClient(i.BaseURL, i.APIKey, i.HttpClient))
	depend.Register[domain.Assistant](adapter)
	return ctx, nil
}
