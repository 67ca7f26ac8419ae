package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/manasdev/duochat/internal/utils"
	"github.com/manasdev/duochat/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"
)

// Fallback strings used by Normalize when a response lacks the expected
// success fields.
const (
	noContentFallback    = "No content found in Gemini response."
	unknownErrorFallback = "Unknown error from Gemini."
)

// Provider implements the ai.Provider interface for Google's Gemini API.
type Provider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a new Gemini provider instance with default values from
// environment. Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_URL: Base URL for API (optional, defaults to Google's API)
func New() *Provider {
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
		model:   defaultModel,
		client:  &http.Client{},
	}
}

// Ensure Provider implements ai.Provider at compile time.
var _ ai.Provider = (*Provider)(nil)

// Name returns the display name used in model labels.
func (p *Provider) Name() string { return "Gemini" }

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

// WithModel sets the model requested for generation.
func (p *Provider) WithModel(model string) *Provider {
	if model != "" {
		p.model = model
	}
	return p
}

// Call implements ai.Provider. Gemini authenticates with the API key as a
// query parameter rather than a header. Transport failures are folded into
// a synthesized error payload instead of being returned.
func (p *Provider) Call(ctx context.Context, history []ai.Message) string {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		p.baseURL, p.model, url.QueryEscape(p.apiKey))

	body := generateContentRequest{Contents: contentsFromHistory(history)}

	raw, err := utils.PostJSON(ctx, p.client, endpoint, "", body)
	if err != nil {
		return ai.SynthesizeError("Error calling Gemini: " + err.Error())
	}
	return raw
}

// Normalize implements ai.Provider. The model label prefers the response's
// modelVersion field and falls back to the configured model name; the
// first candidate's first text part carries the reply.
func (p *Provider) Normalize(raw string) ai.Result {
	var resp generateContentResponse
	if err := ai.DecodeRaw(raw, &resp); err != nil {
		return ai.Result{Text: raw, ModelLabel: ai.LabelParsingError}
	}

	if text, ok := ai.ErrorFieldText(resp.Error); ok {
		if text == "" {
			text = unknownErrorFallback
		}
		return ai.Result{Text: text, ModelLabel: ai.LabelError}
	}

	result := ai.Result{Text: noContentFallback, ModelLabel: p.model}
	if resp.ModelVersion != "" {
		result.ModelLabel = resp.ModelVersion
	}
	if len(resp.Candidates) > 0 {
		if c := resp.Candidates[0].Content; c != nil && len(c.Parts) > 0 && c.Parts[0].Text != "" {
			result.Text = c.Parts[0].Text
		}
	}
	return result
}
