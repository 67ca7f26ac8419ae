// Package ai defines the shared, provider-agnostic types used across the
// LLM provider implementations (OpenAI, Gemini). Each provider package is
// responsible for mapping these types to its own wire format and for
// reducing its own response shape to the common [Result], keeping the
// aggregation and storage layers decoupled from provider-specific details.
//
// The central interface is [Provider]. Its Call and Normalize methods are
// total: transport failures come back as a synthesized error payload and
// malformed responses degrade to an error-shaped [Result], so callers never
// need provider-specific error handling.
package ai
