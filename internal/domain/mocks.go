package domain

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the domain interfaces exercised in tests.

// MockAssistant is a mock implementation of Assistant.
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) RunTurn(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(AssistantTurnResult), args.Error(1)
}

// MockToolInvoker is a mock implementation of ToolInvoker.
type MockToolInvoker struct {
	mock.Mock
}

func (m *MockToolInvoker) ListTools(ctx context.Context) ([]ToolDefinition, error) {
	args := m.Called(ctx)
	defs, _ := args.Get(0).([]ToolDefinition)
	return defs, args.Error(1)
}

func (m *MockToolInvoker) Execute(ctx context.Context, call ToolCall) (ToolExecutionRecord, error) {
	args := m.Called(ctx, call)
	return args.Get(0).(ToolExecutionRecord), args.Error(1)
}

// MockTool is a mock implementation of Tool.
type MockTool struct {
	mock.Mock
}

func (m *MockTool) Definition() ToolDefinition {
	args := m.Called()
	return args.Get(0).(ToolDefinition)
}

func (m *MockTool) StatusMessage() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTool) Execute(ctx context.Context, toolArgs map[string]any) (any, error) {
	args := m.Called(ctx, toolArgs)
	return args.Get(0), args.Error(1)
}

// MockCurrentTimeProvider is a mock implementation of CurrentTimeProvider.
type MockCurrentTimeProvider struct {
	mock.Mock
}

func (m *MockCurrentTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
