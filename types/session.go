package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of a session transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
