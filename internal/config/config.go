// Package config reads process configuration from the environment. A .env
// file is honoured when present (loaded by the godotenv autoload import in
// main); every value has a default except the provider API keys, which the
// provider packages read themselves.
package config

import (
	"log/slog"
	"os"
	"time"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultAddr             = ":8080"
	DefaultAggregateTimeout = 60 * time.Second
)

// Config holds everything main needs to wire the process together.
type Config struct {
	// Addr is the listen address for the HTTP server (DUOCHAT_ADDR).
	Addr string

	// OpenAIModel and GeminiModel select the models requested from each
	// provider (OPENAI_MODEL, GEMINI_MODEL); empty keeps the provider's
	// default.
	OpenAIModel string
	GeminiModel string

	// AggregateTimeout bounds the wait for both provider calls
	// (DUOCHAT_AGGREGATE_TIMEOUT, Go duration syntax).
	AggregateTimeout time.Duration
}

// Load builds a Config from the environment.
func Load() Config {
	cfg := Config{
		Addr:             getenv("DUOCHAT_ADDR", DefaultAddr),
		OpenAIModel:      os.Getenv("OPENAI_MODEL"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		AggregateTimeout: DefaultAggregateTimeout,
	}

	if raw := os.Getenv("DUOCHAT_AGGREGATE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.AggregateTimeout = d
		} else {
			slog.Warn("ignoring invalid DUOCHAT_AGGREGATE_TIMEOUT", "value", raw, "error", err)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
