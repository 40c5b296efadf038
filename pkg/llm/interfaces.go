// Package llm provides clients for hosted text-completion endpoints.
package llm

import (
	"context"
)

// CompletionClient is the narrow contract the suggestion generators need:
// one prompt string in, one text response out, with sampling temperature as
// the only recognized option.
// Use this interface for dependency injection to enable mocking in tests.
type CompletionClient interface {
	// Complete submits a prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string
}

// Ensure both providers implement CompletionClient at compile time.
var (
	_ CompletionClient = (*Client)(nil)
	_ CompletionClient = (*AnthropicClient)(nil)
)
