package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/manasdev/duochat/providers/ai"
)

func TestNew(t *testing.T) {
	provider := New()
	if provider == nil {
		t.Fatal("New() returned nil")
	}
	if provider.model != defaultModel {
		t.Errorf("expected model %q, got %q", defaultModel, provider.model)
	}
}

func TestWithAPIKey(t *testing.T) {
	provider := New().WithAPIKey("test-key").(*Provider)
	if provider.apiKey != "test-key" {
		t.Errorf("expected apiKey %q, got %q", "test-key", provider.apiKey)
	}
}

func TestCall_SendsBearerAuthAndFullHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing or incorrect Authorization header: %s", got)
		}
		if r.URL.Path != chatCompletionsEndpoint {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("unexpected model %q", req.Model)
		}
		if len(req.Messages) != 3 {
			t.Fatalf("expected full history of 3 messages, got %d", len(req.Messages))
		}
		if req.Messages[1].Role != "assistant" {
			t.Errorf("expected assistant role preserved, got %q", req.Messages[1].Role)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionResponse{
			Model:   "gpt-4o-mini",
			Choices: []choice{{Message: chatMessage{Role: "assistant", Content: "hi there"}}},
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL).(*Provider)

	raw := provider.Call(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
		{Role: ai.RoleAssistant, Content: "Hi", ModelLabel: "OpenAI: gpt-4o-mini"},
		{Role: ai.RoleUser, Content: "How are you?"},
	})

	result := provider.Normalize(raw)
	if result.Text != "hi there" {
		t.Errorf("unexpected text: %q", result.Text)
	}
	if result.ModelLabel != "gpt-4o-mini" {
		t.Errorf("unexpected label: %q", result.ModelLabel)
	}
}

func TestCall_Non2xxBecomesErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"insufficient_quota"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := New().WithAPIKey("k").WithBaseURL(server.URL).(*Provider)

	raw := provider.Call(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}})

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("expected synthesized JSON payload, got %q: %v", raw, err)
	}
	if !strings.HasPrefix(payload.Error, "Error calling OpenAI:") {
		t.Errorf("unexpected error text: %q", payload.Error)
	}

	result := provider.Normalize(raw)
	if result.ModelLabel != ai.LabelError {
		t.Errorf("expected %q label, got %q", ai.LabelError, result.ModelLabel)
	}
}

func TestCall_NetworkFailureBecomesErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening any more

	provider := New().WithAPIKey("k").WithBaseURL(server.URL).(*Provider)

	raw := provider.Call(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}})

	result := provider.Normalize(raw)
	if result.ModelLabel != ai.LabelError {
		t.Errorf("expected %q label, got %q", ai.LabelError, result.ModelLabel)
	}
	if !strings.Contains(result.Text, "Error calling OpenAI:") {
		t.Errorf("unexpected text: %q", result.Text)
	}
}

func TestNormalize_SuccessPayload(t *testing.T) {
	result := New().Normalize(`{"choices":[{"message":{"content":"hi"}}],"model":"gpt-4o-mini"}`)
	if result.Text != "hi" {
		t.Errorf("expected %q, got %q", "hi", result.Text)
	}
	if result.ModelLabel != "gpt-4o-mini" {
		t.Errorf("expected %q, got %q", "gpt-4o-mini", result.ModelLabel)
	}
}

func TestNormalize_ErrorField(t *testing.T) {
	result := New().Normalize(`{"error":"rate limited"}`)
	if result.Text != "rate limited" {
		t.Errorf("expected %q, got %q", "rate limited", result.Text)
	}
	if result.ModelLabel != ai.LabelError {
		t.Errorf("expected %q, got %q", ai.LabelError, result.ModelLabel)
	}
}

func TestNormalize_StructuredErrorFallsBackToFixedText(t *testing.T) {
	result := New().Normalize(`{"error":{"message":"model_not_found","type":"invalid_request_error"}}`)
	if result.Text != unknownErrorFallback {
		t.Errorf("expected %q, got %q", unknownErrorFallback, result.Text)
	}
	if result.ModelLabel != ai.LabelError {
		t.Errorf("expected %q, got %q", ai.LabelError, result.ModelLabel)
	}
}

func TestNormalize_MalformedJSON(t *testing.T) {
	result := New().Normalize("not json")
	if result.Text != "not json" {
		t.Errorf("expected raw text preserved, got %q", result.Text)
	}
	if result.ModelLabel != ai.LabelParsingError {
		t.Errorf("expected %q, got %q", ai.LabelParsingError, result.ModelLabel)
	}
}

func TestNormalize_RepairableJSON(t *testing.T) {
	// Single-quoted payloads are repaired and treated as provider errors,
	// not parsing errors.
	result := New().Normalize(`{'error': 'quota exceeded'}`)
	if result.ModelLabel != ai.LabelError {
		t.Errorf("expected %q, got %q", ai.LabelError, result.ModelLabel)
	}
	if result.Text != "quota exceeded" {
		t.Errorf("expected repaired error text, got %q", result.Text)
	}
}

func TestNormalize_MissingFieldsDegrade(t *testing.T) {
	result := New().Normalize(`{}`)
	if result.Text != noContentFallback {
		t.Errorf("expected %q, got %q", noContentFallback, result.Text)
	}
	if result.ModelLabel != ai.LabelNotAvailable {
		t.Errorf("expected %q, got %q", ai.LabelNotAvailable, result.ModelLabel)
	}
}
