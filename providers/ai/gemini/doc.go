// Package gemini implements the ai.Provider interface for Gemini-compatible
// generateContent endpoints: API key passed as a URL query parameter and the
// {contents:[{role,parts:[{text}]}]} request body, with the conversation's
// "assistant" role mapped to Gemini's "model" role.
package gemini
