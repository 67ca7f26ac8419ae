package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HeaderOption is an extra header to set on an outbound request, for
// providers whose authentication does not follow the Bearer convention.
type HeaderOption struct {
	Key   string
	Value string
}

// PostJSON performs a synchronous HTTP POST with a JSON body and returns the
// raw response body as text.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - HTTP errors (connection failures, non-2xx status) return the error
//   - Response body close errors are logged but don't override primary errors
//
// apiKey, when non-empty, is sent as an Authorization Bearer header; header
// options cover any other auth convention. The body is returned verbatim for
// any 2xx status so the caller can apply its own tolerant parsing.
func PostJSON(ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (string, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer func(b io.ReadCloser) {
		if closeErr := b.Close(); closeErr != nil {
			// Log the close error, but don't override the main error
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	slog.Debug("provider request completed",
		"url", url,
		"status", res.StatusCode,
		"duration", requestDuration,
		"response_bytes", len(respBody),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("non-2xx status %d: %s", res.StatusCode, TruncateString(string(respBody), DefaultMaxStringLength))
	}

	return string(respBody), nil
}
