package chat

import "context"

// Role represents the role of a message sender in a completion request.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PromptMessage is a single message in a completion request.
type PromptMessage struct {
	Role    Role
	Content string
}

// CompletionRequest contains the parameters for a generative-text request.
type CompletionRequest struct {
	Model       string
	Messages    []PromptMessage
	MaxTokens   int
	Temperature float64
}

// CompletionResponse contains the result of a generative-text request.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// Provider defines the interface for generative-text providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
