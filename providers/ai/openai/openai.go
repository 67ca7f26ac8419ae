package openai

import (
	"context"
	"net/http"
	"os"

	"github.com/manasdev/duochat/internal/utils"
	"github.com/manasdev/duochat/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
	defaultModel            = "gpt-4o-mini"
)

// Fallback strings used by Normalize when a response lacks the expected
// success fields.
const (
	noContentFallback    = "No content found in OpenAI response."
	unknownErrorFallback = "Unknown error from OpenAI."
)

// Provider implements the ai.Provider interface for the OpenAI API.
type Provider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a new OpenAI provider instance with default values from
// environment. Environment variables:
//   - OPENAI_API_KEY: API key for authentication
//   - OPENAI_API_URL: Base URL for API (optional, defaults to OpenAI's API)
func New() *Provider {
	baseURL := os.Getenv("OPENAI_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		model:   defaultModel,
		client:  &http.Client{},
	}
}

// Ensure Provider implements ai.Provider at compile time.
var _ ai.Provider = (*Provider)(nil)

// Name returns the display name used in model labels.
func (p *Provider) Name() string { return "OpenAI" }

// WithAPIKey sets the API key for the provider.
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHTTPClient sets a custom HTTP client.
func (p *Provider) WithHTTPClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// WithModel sets the model requested for completions.
func (p *Provider) WithModel(model string) *Provider {
	if model != "" {
		p.model = model
	}
	return p
}

// Call implements ai.Provider. The full conversation history is sent so the
// model sees the whole exchange, not just the latest turn. Transport
// failures are folded into a synthesized error payload instead of being
// returned, keeping the normalization path uniform.
func (p *Provider) Call(ctx context.Context, history []ai.Message) string {
	body := requestFromHistory(p.model, history)

	raw, err := utils.PostJSON(ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, body)
	if err != nil {
		return ai.SynthesizeError("Error calling OpenAI: " + err.Error())
	}
	return raw
}

// Normalize implements ai.Provider. It reduces a raw response body to the
// common result shape and never fails: undecodable input is returned as the
// display text under the "Parsing Error" label.
func (p *Provider) Normalize(raw string) ai.Result {
	var resp chatCompletionResponse
	if err := ai.DecodeRaw(raw, &resp); err != nil {
		return ai.Result{Text: raw, ModelLabel: ai.LabelParsingError}
	}

	if text, ok := ai.ErrorFieldText(resp.Error); ok {
		if text == "" {
			text = unknownErrorFallback
		}
		return ai.Result{Text: text, ModelLabel: ai.LabelError}
	}

	result := ai.Result{Text: noContentFallback, ModelLabel: ai.LabelNotAvailable}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		result.Text = resp.Choices[0].Message.Content
	}
	if resp.Model != "" {
		result.ModelLabel = resp.Model
	}
	return result
}
