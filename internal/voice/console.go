// internal/voice/console.go
package voice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/locale"
)

const (
	listenPrompt = "🎤 You: "
	speakPrefix  = "🔊 Mitra: "
)

// Console is the terminal stand-in for a microphone and speaker: Listen reads
// one line, Speak prints one line. Language detection for LanguageAuto is
// script-based via locale.DetectLanguage.
type Console struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	startOnce sync.Once
	lines     chan lineResult
}

type lineResult struct {
	text string
	err  error
}

var _ Interface = (*Console)(nil)

// NewConsole builds a console backend over the given streams, typically
// os.Stdin and os.Stdout.
func NewConsole(in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	return &Console{
		in:     in,
		out:    out,
		logger: logger.Named("voice.console"),
		// Buffered so the reader can park its final error and exit even
		// when the session was abandoned mid-listen.
		lines: make(chan lineResult, 1),
	}
}

// start lazily launches the line reader. Reading in a goroutine keeps Listen
// responsive to context cancellation even though the underlying Read blocks.
func (c *Console) start() {
	c.startOnce.Do(func() {
		go func() {
			scanner := bufio.NewScanner(c.in)
			for scanner.Scan() {
				c.lines <- lineResult{text: scanner.Text()}
			}
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			c.lines <- lineResult{err: err}
			close(c.lines)
		}()
	})
}

// Listen prompts for and captures one utterance. On end of input it returns
// io.EOF so session loops can wind down.
func (c *Console) Listen(ctx context.Context, language string) (string, string, error) {
	c.start()
	fmt.Fprint(c.out, listenPrompt)

	select {
	case <-ctx.Done():
		return "", "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", "", io.EOF
		}
		if res.err != nil {
			return "", "", res.err
		}
		text := strings.TrimSpace(res.text)
		detected := ""
		if language == LanguageAuto {
			if code, found := locale.DetectLanguage(text); found {
				detected = code
			}
		}
		c.logger.Debug("captured utterance",
			zap.Int("chars", len(text)),
			zap.String("language", language),
			zap.String("detected", detected),
		)
		return text, detected, nil
	}
}

// Speak renders one assistant utterance to the output stream.
func (c *Console) Speak(ctx context.Context, text, language string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.logger.Debug("speaking", zap.Int("chars", len(text)), zap.String("language", language))
	_, err := fmt.Fprintf(c.out, "%s%s\n", speakPrefix, text)
	return err
}
