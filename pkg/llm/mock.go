package llm

import (
	"context"
)

// MockCompletionClient is a configurable mock for testing suggestion
// generation. Set the function field to control behavior in tests.
type MockCompletionClient struct {
	// CompleteFunc is called when Complete is invoked.
	// If nil, returns an empty string and nil error.
	CompleteFunc func(ctx context.Context, prompt string, temperature float64) (string, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Call tracking for verification
	CompleteCalls int
	LastPrompt    string
	LastTemp      float64
}

// NewMockCompletionClient creates a new mock with sensible defaults.
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{
		Model: "mock-model",
	}
}

// Complete implements CompletionClient.
func (m *MockCompletionClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.CompleteCalls++
	m.LastPrompt = prompt
	m.LastTemp = temperature
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, temperature)
	}
	return "", nil
}

// GetModel implements CompletionClient.
func (m *MockCompletionClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

var _ CompletionClient = (*MockCompletionClient)(nil)
