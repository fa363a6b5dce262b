package model

// Chat roles for conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is a single role/content pair in a conversation history,
// most-recent-last.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
