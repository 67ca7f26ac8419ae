package gemini

import (
	"encoding/json"

	"github.com/manasdev/duochat/providers/ai"
)

/*
	GENERATE CONTENT API - INPUT
*/

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// contentsFromHistory reshapes the generic conversation history into Gemini
// contents. Role mapping: user -> user, assistant -> model.
func contentsFromHistory(history []ai.Message) []content {
	contents := make([]content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == ai.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: m.Content}},
		})
	}
	return contents
}

/*
	GENERATE CONTENT API - OUTPUT
*/

// generateContentResponse covers the subset of the response the normalizer
// reads. Error carries both real API errors and payloads synthesized by Call.
type generateContentResponse struct {
	Candidates   []candidate     `json:"candidates"`
	ModelVersion string          `json:"modelVersion,omitempty"`
	Error        json.RawMessage `json:"error,omitempty"`
}

type candidate struct {
	Content *content `json:"content"`
}
