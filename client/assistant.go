package client

import (
	"context"
	"fmt"
	"net/http"
)

// Assistant chat accessor. The generative provider lives behind the remote
// API; this client only carries the conversation over HTTP.

// AssistantMessage is one turn of the assistant conversation.
type AssistantMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type assistantRequest struct {
	Message string             `json:"message"`
	History []AssistantMessage `json:"history,omitempty"`
}

type assistantResponse struct {
	Reply string `json:"reply"`
}

// SendAssistantMessage sends one user message, with optional prior turns for
// context, and returns the assistant's reply.
func (c *Client) SendAssistantMessage(ctx context.Context, message string, history []AssistantMessage, opts ...RequestOption) (string, error) {
	if message == "" {
		return "", fmt.Errorf("assistant message is required")
	}
	var ar assistantResponse
	req := assistantRequest{Message: message, History: history}
	if err := c.doJSON(ctx, http.MethodPost, "/assistant/chat", req, http.StatusOK, "assistant chat", &ar, opts...); err != nil {
		return "", err
	}
	return ar.Reply, nil
}
