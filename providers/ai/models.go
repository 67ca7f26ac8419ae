package ai

import "encoding/json"

/*
	##### CONVERSATION MODEL #####
*/

// Message represents a single turn in a conversation. Messages are
// append-only once stored; ordering is chronological.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`

	// ModelLabel identifies which model produced an assistant turn,
	// e.g. "OpenAI: gpt-4o-mini". Empty for user turns.
	ModelLabel string `json:"model,omitempty"`
}

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

/*
	##### PROVIDER OUTPUT #####
*/

// Result is the common shape every provider response is reduced to.
type Result struct {
	Text       string `json:"text"`
	ModelLabel string `json:"model"`
}

// Sentinel model labels used when a response cannot be attributed to a
// concrete model.
const (
	LabelNotAvailable = "N/A"
	LabelError        = "Error"
	LabelParsingError = "Parsing Error"
)

// NotCalledPayload is the raw payload substituted for a provider that was
// not selected for a request. It flows through the same normalization path
// as real responses so the downstream logic stays uniform.
const NotCalledPayload = `{"model":"N/A", "text":"Not called"}`

// SynthesizeError wraps a transport-failure description into the same
// {"error": "..."} shape providers report their own errors in, so both
// take one path through normalization.
func SynthesizeError(description string) string {
	encoded, err := json.Marshal(map[string]string{"error": description})
	if err != nil {
		return `{"error":"unknown transport error"}`
	}
	return string(encoded)
}

/*
	##### SELECTION #####
*/

// Selection determines which providers are called for a single query.
type Selection string

const (
	SelectOpenAI Selection = "openai"
	SelectGemini Selection = "gemini"
	SelectBoth   Selection = "both"
)

// ParseSelection maps a raw form value to a Selection. Unknown values fall
// back to SelectBoth, matching the UI default.
func ParseSelection(s string) Selection {
	switch Selection(s) {
	case SelectOpenAI:
		return SelectOpenAI
	case SelectGemini:
		return SelectGemini
	default:
		return SelectBoth
	}
}

// OpenAI reports whether the selection includes the OpenAI provider.
func (s Selection) OpenAI() bool {
	return s == SelectOpenAI || s == SelectBoth
}

// Gemini reports whether the selection includes the Gemini provider.
func (s Selection) Gemini() bool {
	return s == SelectGemini || s == SelectBoth
}
