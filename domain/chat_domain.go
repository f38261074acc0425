package domain

import (
	"time"
)

var (
	MessageSuccessChat            = "chat response generated successfully"
	MessageSuccessGetChatHistory  = "chat history retrieved successfully"
	MessageSuccessGetChatSessions = "chat sessions retrieved successfully"

	MessageFailedChat            = "failed to generate chat response"
	MessageFailedGetChatHistory  = "failed to retrieve chat history"
	MessageFailedGetChatSessions = "failed to retrieve chat sessions"
)

type (
	ChatRequest struct {
		Message   string `json:"message" validate:"required"`
		SessionID string `json:"session_id" validate:"omitempty,uuid"`
	}

	ChatResponse struct {
		Response  string `json:"response"`
		SessionID string `json:"session_id"`
	}

	ChatMessageResponse struct {
		ID        string    `json:"id"`
		SessionID string    `json:"session_id"`
		Role      string    `json:"role"`
		Content   string    `json:"content"`
		Timestamp time.Time `json:"timestamp"`
	}

	ChatSessionResponse struct {
		SessionID     string    `json:"session_id"`
		LastMessage   string    `json:"last_message"`
		LastTimestamp time.Time `json:"last_timestamp"`
	}
)
