// internal/llm/factory.go
package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/config"
)

// NewProvider is a factory function that creates a Provider based on the
// configuration.
func NewProvider(cfg config.LLMConfig, logger *zap.Logger) (Provider, error) {
	// Using constants defined in config package to avoid magic strings.
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(cfg, logger)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg, logger)
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg, logger)
	case config.ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown or unsupported LLM provider configured: '%s'. Supported: [%s, %s, %s, %s]",
			cfg.Provider, config.ProviderGemini, config.ProviderOpenAI, config.ProviderAnthropic, config.ProviderMock)
	}
}
