package llm

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/janmitra/mitra-cli/internal/config"
)

// setupTestLogger is a helper to create a zap logger for testing with an observer.
func setupTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	core, _ := observer.New(zap.DebugLevel)
	return zap.New(core)
}

// validLLMConfig returns a configuration that passes every constructor's
// checks. RateRPS is left at zero so tests never sit in the limiter.
func validLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		Provider:    config.ProviderGemini,
		Model:       "test-model",
		APIKey:      "test-api-key",
		APITimeout:  5 * time.Second,
		Temperature: 0.7,
		MaxTokens:   256,
	}
}
