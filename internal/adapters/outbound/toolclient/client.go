// Package toolclient implements the remote tool invoker: tool discovery and
// execution against a stand-alone tool server speaking the MCP-style HTTP
// protocol, authenticated with a shared secret header.
package toolclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AuthHeader carries the shared secret on every tool-server request.
const AuthHeader = "x-authentication-secret"

// Client calls a remote tool server over HTTP.
type Client struct {
	baseURL      string
	secret       string
	http         *http.Client
	timeProvider domain.CurrentTimeProvider
}

// NewClient creates a new tool-server client.
func NewClient(baseURL, secret string, httpClient *http.Client, timeProvider domain.CurrentTimeProvider) Client {
	return Client{
		baseURL:      baseURL,
		secret:       secret,
		http:         httpClient,
		timeProvider: timeProvider,
	}
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type toolListResponse struct {
	Tools []toolDescriptor `json:"tools"`
}

type executeRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type executeResponse struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError"`
	Error   string         `json:"error"`
}

// ListTools fetches the remote tool catalog and rebuilds tagged definitions
// from the served JSON schemas.
func (c Client) ListTools(ctx context.Context) ([]domain.ToolDefinition, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	body, status, err := c.do(spanCtx, http.MethodGet, "/v1/tools", nil)
	if err == nil {
		switch status {
		case http.StatusOK:
		case http.StatusUnauthorized:
			err = domain.NewAuthErr("Unauthorized")
		default:
			err = domain.NewUpstreamErr(status, fmt.Sprintf("non-2xx response: %d: %s", status, string(body)))
		}
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var list toolListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		err = fmt.Errorf("unmarshal tool list: %w", err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	definitions := make([]domain.ToolDefinition, len(list.Tools))
	for i, tool := range list.Tools {
		definitions[i] = domain.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Input:       domain.ParseToolInputSchema(tool.InputSchema),
		}
	}
	return definitions, nil
}

// Execute dispatches one tool call to the remote server. Remote failures that
// carry a tool result are fed back to the model via the execution record;
// protocol failures surface as domain errors with a zero record.
func (c Client) Execute(ctx context.Context, call domain.ToolCall) (domain.ToolExecutionRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool.function", call.Name),
	))
	defer span.End()

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			err = domain.NewToolExecutionErr(call.Name, fmt.Errorf("malformed arguments: %w", err))
			telemetry.RecordErrorAndStatus(span, err)
			return domain.ToolExecutionRecord{}, err
		}
	}

	record := domain.ToolExecutionRecord{
		ToolName:  call.Name,
		Args:      args,
		Timestamp: c.timeProvider.Now().UnixMilli(),
	}

	body, status, err := c.do(spanCtx, http.MethodPost, "/v1/tools/execute", executeRequest{
		Name:      call.Name,
		Arguments: args,
	})
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		record.Result = map[string]any{"error": err.Error()}
		return record, domain.NewToolExecutionErr(call.Name, err)
	}

	switch status {
	case http.StatusUnauthorized:
		err := domain.NewAuthErr("Unauthorized")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolExecutionRecord{}, err
	case http.StatusNotFound:
		err := domain.NewToolNotFoundErr(errorMessage(body, fmt.Sprintf("Unknown tool: %s", call.Name)))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolExecutionRecord{}, err
	}

	var result executeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		err = fmt.Errorf("unmarshal execute response: %w", err)
		telemetry.RecordErrorAndStatus(span, err)
		record.Result = map[string]any{"error": err.Error()}
		return record, domain.NewToolExecutionErr(call.Name, err)
	}

	text := ""
	if len(result.Content) > 0 {
		text = result.Content[0].Text
	}

	// The server reports tool failures in-band: an isError body with the
	// failure text, typically alongside a 500 status.
	if result.IsError || status != http.StatusOK {
		if text == "" {
			text = fmt.Sprintf("non-2xx response: %d", status)
		}
		record.Result = map[string]any{"error": text}
		err := domain.NewToolExecutionErr(call.Name, errors.New(text))
		telemetry.RecordErrorAndStatus(span, err)
		return record, err
	}

	// Tool results travel as JSON text inside the content block. Anything
	// that does not parse is kept verbatim.
	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		payload = text
	}
	record.Result = payload
	return record, nil
}

// do performs one authenticated request and returns the response body and
// status code. Only transport failures produce an error; status mapping
// belongs to the callers.
func (c Client) do(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid base URL: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(AuthHeader, c.secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// errorMessage extracts the error field from a protocol error body.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}

// InitToolInvoker selects the tool invoker implementation: the remote
// tool-server client when TOOLSERVER_URL is configured, the in-process
// registry otherwise.
type InitToolInvoker struct {
	HttpClient   *http.Client               `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	ToolServer   string                     `config:"TOOLSERVER_URL" default:""`
	SharedSecret string                     `config:"TOOLSERVER_SHARED_SECRET" default:""`
}

// Initialize registers the selected invoker in the dependency container.
func (i InitToolInvoker) Initialize(ctx context.Context) (context.Context, error) {
	if i.ToolServer != "" {
		depend.Register[domain.ToolInvoker](NewClient(i.ToolServer, i.SharedSecret, i.HttpClient, i.TimeProvider))
		return ctx, nil
	}

	registry, err := depend.Resolve[assistant.ToolManager]()
	if err != nil {
		return ctx, fmt.Errorf("failed to resolve tool registry: %w", err)
	}
	depend.Register[domain.ToolInvoker](registry)
	return ctx, nil
}
