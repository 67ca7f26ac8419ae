package ai

import (
	"context"
	"net/http"
)

// Provider is the interface every LLM provider implementation must satisfy.
// It covers dispatching one chat request built from the full conversation
// history and interpreting the raw response text.
type Provider interface {
	// Name returns the display name of the provider, e.g. "OpenAI".
	Name() string

	// Call sends the conversation history to the provider and returns the
	// raw response body. Call never fails: any transport-level problem
	// (network error, non-2xx status, context cancellation) is converted
	// into a synthesized {"error": "..."} payload so that transport
	// failures and provider-reported errors take the same path through
	// Normalize.
	Call(ctx context.Context, history []Message) string

	// Normalize reduces a raw response body to a [Result]. It is pure and
	// total: malformed input degrades to an error-shaped Result instead of
	// returning an error.
	Normalize(raw string) Result

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHTTPClient sets the HTTP client used for outbound requests.
	WithHTTPClient(httpClient *http.Client) Provider
}
