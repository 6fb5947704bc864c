package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentRequest_LastUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		messages []AgentMessage
		want     string
	}{
		{"empty conversation", nil, ""},
		{"no user messages", []AgentMessage{{Role: RoleAssistant, Content: "hi"}}, ""},
		{"single user message", []AgentMessage{{Role: RoleUser, Content: "hello"}}, "hello"},
		{
			"latest user message wins",
			[]AgentMessage{
				{Role: RoleUser, Content: "first"},
				{Role: RoleAssistant, Content: "reply"},
				{Role: RoleUser, Content: "second"},
			},
			"second",
		},
		{
			"trailing assistant message ignored",
			[]AgentMessage{
				{Role: RoleUser, Content: "question"},
				{Role: RoleAssistant, Content: "answer"},
			},
			"question",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := AgentRequest{Messages: tt.messages}
			assert.Equal(t, tt.want, req.LastUserMessage())
		})
	}
}
