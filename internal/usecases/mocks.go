package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockChat is a mock implementation of the Chat use case.
type MockChat struct {
	mock.Mock
}

func (m *MockChat) Execute(ctx context.Context, userMessage string, history []domain.ChatMessage) (<-chan domain.StreamEvent, error) {
	args := m.Called(ctx, userMessage, history)
	events, _ := args.Get(0).(<-chan domain.StreamEvent)
	return events, args.Error(1)
}
