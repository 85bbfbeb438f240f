// internal/voice/voice.go
//
// Package voice abstracts speech capture and playback behind a small
// interface so the dialogue loop stays identical whether the program is
// wired to a console stand-in or a scripted transcript.
package voice

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/config"
)

// LanguageAuto asks Listen to report a best-effort detected language
// alongside the captured text.
const LanguageAuto = "auto"

// Interface is the speech boundary of the assistant. Listen blocks for one
// user utterance; empty text means "not understood". When language is
// LanguageAuto the second return value carries the detected language code
// ("" when detection failed). Speak renders one assistant utterance.
type Interface interface {
	Listen(ctx context.Context, language string) (text, detectedLanguage string, err error)
	Speak(ctx context.Context, text, language string) error
}

// NewBackend creates the configured speech backend. The scripted backend
// starts with an empty transcript; callers push inputs before use.
func NewBackend(cfg config.VoiceConfig, in io.Reader, out io.Writer, logger *zap.Logger) (Interface, error) {
	switch cfg.Backend {
	case config.VoiceConsole:
		return NewConsole(in, out, logger), nil
	case config.VoiceScripted:
		return NewScripted(logger), nil
	default:
		return nil, fmt.Errorf("unknown voice backend configured: '%s'. Supported: [%s, %s]",
			cfg.Backend, config.VoiceConsole, config.VoiceScripted)
	}
}
