package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// Provider names accepted by NewCompletionClient.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewCompletionClient creates the completion client for the configured
// provider. "openai" covers any OpenAI-compatible endpoint, including
// self-hosted ones.
func NewCompletionClient(provider string, cfg *Config, logger *zap.Logger) (CompletionClient, error) {
	switch provider {
	case ProviderOpenAI, "":
		return NewClient(cfg, logger)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", provider)
	}
}
