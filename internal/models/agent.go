package models

// Role identifies the author of a conversation message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// AgentStatus is the outcome reported in an AgentResponse
type AgentStatus string

const (
	AgentStatusSuccess AgentStatus = "success"
	AgentStatusError   AgentStatus = "error"
)

// AgentMessage is a single conversation message
type AgentMessage struct {
	Role    Role   `json:"role" binding:"required"`
	Content string `json:"content"`
}

// AgentRequest is the advice agent request envelope
type AgentRequest struct {
	Messages []AgentMessage `json:"messages" binding:"required"`
}

// LastUserMessage returns the content of the most recent user message,
// or an empty string if none exists.
func (r AgentRequest) LastUserMessage() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return r.Messages[i].Content
		}
	}
	return ""
}

// AgentResponse is the advice agent response envelope. The agent never
// fails a well-formed request; errors are reported inside the envelope.
type AgentResponse struct {
	AgentName    string                 `json:"agent_name"`
	Status       AgentStatus            `json:"status"`
	Data         map[string]interface{} `json:"data,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}
