// internal/llm/provider.go
package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/janmitra/mitra-cli/internal/config"
	"github.com/janmitra/mitra-cli/internal/locale"
)

// Provider is a stateless text generator. Call sends one prompt and returns
// the model's reply in the given language. An empty reply with a nil error
// means the model produced no usable output; callers fall back to templated
// text instead of retrying.
type Provider interface {
	Call(ctx context.Context, prompt, language string) (string, error)
}

// systemInstruction frames every provider call so replies stay in the
// session language and short enough to be spoken aloud.
func systemInstruction(language string) string {
	return fmt.Sprintf(
		"You are Mitra, a welfare scheme assistant for citizens of India. "+
			"Reply only in %s, in short plain sentences that can be read aloud. "+
			"Never invent scheme names, amounts, or documents.",
		locale.LanguageName(language))
}

// newLimiter builds the request rate limiter applied in front of a provider.
// A non-positive RPS disables limiting.
func newLimiter(cfg config.LLMConfig) *rate.Limiter {
	if cfg.RateRPS <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RateRPS), burst)
}
