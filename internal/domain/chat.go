package domain

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// ChatMessage represents one caller-supplied conversation turn.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// NormalizeHistory prepares caller-supplied history for submission to the
// assistant: leading non-user turns are dropped (a stale assistant greeting
// must never open the transcript) and caller-supplied system turns are
// removed because the system prompt is owned by the orchestration loop.
func NormalizeHistory(history []ChatMessage) []ChatMessage {
	start := 0
	for start < len(history) && history[start].Role != ChatRole_User {
		start++
	}

	normalized := make([]ChatMessage, 0, len(history)-start)
	for _, msg := range history[start:] {
		if msg.Role == ChatRole_System {
			continue
		}
		normalized = append(normalized, msg)
	}
	return normalized
}
