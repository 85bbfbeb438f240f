// internal/dialog/dialog.go

// Package dialog implements the bounded ask-and-parse loop every spoken
// question of a session goes through: speak a prompt, listen, parse the
// reply, and retry a fixed number of times before falling back to a safe
// default. Keeping the loop in one place guarantees that no single question
// can stall a conversation forever.
package dialog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/voice"
)

// DefaultAttempts bounds the ask-listen rounds when the caller does not
// configure a budget of its own.
const DefaultAttempts = 3

// Prompter runs the spoken exchanges of a session over one voice backend.
// Every question asked through it shares the same attempt budget.
type Prompter struct {
	voice    voice.Interface
	logger   *zap.Logger
	attempts int
}

// NewPrompter wires a prompter to a voice backend. A non-positive attempts
// value selects DefaultAttempts.
func NewPrompter(v voice.Interface, attempts int, logger *zap.Logger) *Prompter {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Prompter{
		voice:    v,
		logger:   logger.Named("dialog"),
		attempts: attempts,
	}
}

// Question describes one spoken exchange: what to ask, how to read the
// answer, and what to assume when no usable answer arrives.
type Question[T any] struct {
	// Prompt is spoken before each listen.
	Prompt string

	// Repeat is spoken between failed attempts. When empty, the generic
	// "please say again" line for the question's language is used.
	Repeat string

	// Language is used for both speaking and listening.
	Language string

	// Parse turns a non-empty reply into a value. Returning ok=false marks
	// the reply unusable and triggers a retry. Required.
	Parse func(text string) (T, bool)

	// Default is the value resolved when every attempt fails.
	Default T
}

// AskWithRetry speaks q.Prompt and parses the reply, retrying while the
// capture is empty or the parser rejects it, up to the prompter's attempt
// budget. answered is false when the budget ran out and q.Default was taken.
// The error is non-nil only when the voice backend fails or ctx ends;
// unusable replies alone never produce one.
func AskWithRetry[T any](ctx context.Context, p *Prompter, q Question[T]) (T, bool, error) {
	repeat := q.Repeat
	if repeat == "" {
		repeat = locale.Message(locale.MsgSayAgain, q.Language)
	}

	for attempt := 1; attempt <= p.attempts; attempt++ {
		if attempt > 1 {
			if err := p.voice.Speak(ctx, repeat, q.Language); err != nil {
				return q.Default, false, err
			}
		}
		if q.Prompt != "" {
			if err := p.voice.Speak(ctx, q.Prompt, q.Language); err != nil {
				return q.Default, false, err
			}
		}

		reply, _, err := p.voice.Listen(ctx, q.Language)
		if err != nil {
			return q.Default, false, err
		}
		reply = strings.TrimSpace(reply)
		if reply != "" {
			if value, ok := q.Parse(reply); ok {
				return value, true, nil
			}
		}
		p.logger.Debug("reply not usable",
			zap.Int("attempt", attempt),
			zap.String("language", q.Language))
	}

	p.logger.Info("question went unanswered, taking the default",
		zap.Int("attempts", p.attempts),
		zap.String("language", q.Language))
	return q.Default, false, nil
}

// Confirm asks a yes/no question and resolves indecision to fallback once
// the attempt budget is spent.
func Confirm(ctx context.Context, p *Prompter, prompt, language string, fallback bool) (bool, error) {
	yes, _, err := AskWithRetry(ctx, p, Question[bool]{
		Prompt:   prompt,
		Repeat:   locale.Message(locale.MsgSayYesNo, language),
		Language: language,
		Parse: func(text string) (bool, bool) {
			return locale.ParseYesNo(text, language)
		},
		Default: fallback,
	})
	return yes, err
}

// AnyText accepts any non-empty reply verbatim. It is the parser for
// free-form questions such as the opening "what do you need".
func AnyText(text string) (string, bool) {
	return text, text != ""
}
