package openai

import (
	"encoding/json"

	"github.com/manasdev/duochat/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// requestFromHistory reshapes the generic conversation history into the
// chat completions wire format. Model labels are a local display concern
// and are not forwarded.
func requestFromHistory(model string, history []ai.Message) chatCompletionRequest {
	messages := make([]chatMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, chatMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return chatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

// chatCompletionResponse covers the subset of the response the normalizer
// reads, plus the error field shared by both real API errors and payloads
// synthesized by Call.
type chatCompletionResponse struct {
	Model   string          `json:"model"`
	Choices []choice        `json:"choices"`
	Error   json.RawMessage `json:"error,omitempty"`
}

type choice struct {
	Message chatMessage `json:"message"`
}
