// internal/voice/scripted.go
package voice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/locale"
)

// ErrScriptExhausted is returned by Scripted.Listen when every queued input
// has been consumed. Session loops treat it as the end of the conversation.
var ErrScriptExhausted = errors.New("scripted voice: no inputs left")

// Utterance is one recorded Speak call.
type Utterance struct {
	Text     string
	Language string
}

// Scripted replays queued user inputs and records every spoken response. The
// demo and evaluate modes drive full sessions through it without a terminal.
type Scripted struct {
	logger *zap.Logger

	inputs []string
	pos    int

	// Spoken holds every Speak call in order, for assertions and reports.
	Spoken []Utterance
}

var _ Interface = (*Scripted)(nil)

// NewScripted builds a scripted backend with an optional initial transcript.
func NewScripted(logger *zap.Logger, inputs ...string) *Scripted {
	return &Scripted{
		logger: logger.Named("voice.scripted"),
		inputs: append([]string(nil), inputs...),
	}
}

// Push appends further user inputs to the script.
func (s *Scripted) Push(inputs ...string) {
	s.inputs = append(s.inputs, inputs...)
}

// Remaining reports how many queued inputs have not been consumed yet.
func (s *Scripted) Remaining() int {
	return len(s.inputs) - s.pos
}

// Listen pops the next queued input. Detection for LanguageAuto is
// script-based, mirroring the console backend.
func (s *Scripted) Listen(ctx context.Context, language string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if s.pos >= len(s.inputs) {
		return "", "", ErrScriptExhausted
	}
	text := s.inputs[s.pos]
	s.pos++

	detected := ""
	if language == LanguageAuto {
		if code, found := locale.DetectLanguage(text); found {
			detected = code
		}
	}
	s.logger.Debug("replaying utterance",
		zap.Int("position", s.pos),
		zap.String("language", language),
		zap.String("detected", detected),
	)
	return text, detected, nil
}

// Speak records the utterance instead of rendering it.
func (s *Scripted) Speak(ctx context.Context, text, language string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Spoken = append(s.Spoken, Utterance{Text: text, Language: language})
	return nil
}
