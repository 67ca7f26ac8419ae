package ai

import (
	"encoding/json"

	"github.com/manasdev/duochat/core/parse"
)

// DecodeRaw decodes a raw response body into a provider wire struct with
// automatic JSON repair. A returned error means the body is not usable as
// JSON at all and the normalizer should degrade to its parsing-error result.
func DecodeRaw(raw string, v any) error {
	return parse.TolerantUnmarshal(raw, v)
}

// ErrorFieldText interprets a top-level error field captured as raw JSON.
// ok is false when the field is absent or null. When the field is a plain
// string its value is returned; structured error objects yield an empty
// text, leaving the caller to substitute its provider-specific fallback.
func ErrorFieldText(field json.RawMessage) (text string, ok bool) {
	if len(field) == 0 || string(field) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(field, &s); err == nil {
		return s, true
	}
	return "", true
}
