// Package openai implements the ai.Provider interface for OpenAI-compatible
// chat completion endpoints: bearer-token auth and the
// {model, messages:[{role,content}]} request body.
package openai
