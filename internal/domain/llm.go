package domain

import "context"

// ChatRole represents the role of a message sent to the LLM
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// LLMResponseFormat constrains the shape of the assistant output
type LLMResponseFormat string

const (
	LLMResponseFormat_Text       LLMResponseFormat = "text"
	LLMResponseFormat_JSONObject LLMResponseFormat = "json_object"
)

// LLMChatMessage represents a message in a chat request to the LLM API
type LLMChatMessage struct {
	Role    ChatRole `yaml:"role"`
	Content string   `yaml:"content"`
}

// LLMChatRequest represents a request to the LLM API
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters
	Temperature    *float64
	TopP           *float64
	MaxTokens      *int
	ResponseFormat LLMResponseFormat
}

// LLMUsage contains token usage information
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// LLMClient defines the interface for interacting with an LLM API
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)
}
