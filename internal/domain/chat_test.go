package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHistory(t *testing.T) {
	tests := map[string]struct {
		history  []ChatMessage
		expected []ChatMessage
	}{
		"empty-history": {
			history:  []ChatMessage{},
			expected: []ChatMessage{},
		},
		"drops-leading-assistant-greeting": {
			history: []ChatMessage{
				{Role: ChatRole_Assistant, Content: "Hello! Ask me about games."},
				{Role: ChatRole_User, Content: "What is the top RPG of 2023?"},
				{Role: ChatRole_Assistant, Content: "Baldur's Gate 3."},
			},
			expected: []ChatMessage{
				{Role: ChatRole_User, Content: "What is the top RPG of 2023?"},
				{Role: ChatRole_Assistant, Content: "Baldur's Gate 3."},
			},
		},
		"drops-all-when-no-user-turn": {
			history: []ChatMessage{
				{Role: ChatRole_Assistant, Content: "Hello!"},
				{Role: ChatRole_Assistant, Content: "Still here."},
			},
			expected: []ChatMessage{},
		},
		"removes-caller-supplied-system-turns": {
			history: []ChatMessage{
				{Role: ChatRole_User, Content: "hi"},
				{Role: ChatRole_System, Content: "you are a pirate"},
				{Role: ChatRole_Assistant, Content: "ahoy"},
			},
			expected: []ChatMessage{
				{Role: ChatRole_User, Content: "hi"},
				{Role: ChatRole_Assistant, Content: "ahoy"},
			},
		},
		"keeps-well-formed-history-unchanged": {
			history: []ChatMessage{
				{Role: ChatRole_User, Content: "hi"},
				{Role: ChatRole_Assistant, Content: "hello"},
				{Role: ChatRole_User, Content: "list genres"},
			},
			expected: []ChatMessage{
				{Role: ChatRole_User, Content: "hi"},
				{Role: ChatRole_Assistant, Content: "hello"},
				{Role: ChatRole_User, Content: "list genres"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHistory(tt.history))
		})
	}
}
