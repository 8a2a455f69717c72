// ABOUTME: Role-tagged chat message passed to LLM collaborators
// ABOUTME: Provider-neutral so OpenAI and Gemini clients share one shape
package models

// Role identifies the author of a chat message
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single entry in an LLM conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage builds a system-role message
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
