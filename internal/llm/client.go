package llm

import "context"

// Roles use the backend vocabulary: the assistant's turns are "model".
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Message struct {
	Role    string `json:"role"` // user, model
	Content string `json:"content"`
}

type ToolCall struct {
	ID     string         `json:"id,omitempty"`
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
	Err    error          `json:"-"` // set when the arguments could not be decoded
}

type Response struct {
	Content   string
	ToolCalls []ToolCall
}

type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

type Client interface {
	Chat(ctx context.Context, systemPrompt string, messages []Message, tools []Tool) (*Response, error)
}
