// internal/llm/anthropic.go
package llm

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/janmitra/mitra-cli/internal/config"
)

const (
	anthropicDefaultModel = "claude-3-5-haiku-20241022"
	// The Messages API rejects requests without a positive token cap.
	anthropicFallbackTokens = 1024
)

// messagesClient captures the subset of the Anthropic SDK the provider uses.
// It is satisfied by *sdk.MessageService and by test stubs.
type messagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Provider via the Claude Messages API.
type AnthropicClient struct {
	msg     messagesClient
	model   string
	cfg     config.LLMConfig
	logger  *zap.Logger
	limiter *rate.Limiter
}

var _ Provider = (*AnthropicClient)(nil)

// NewAnthropicClient initializes the client.
func NewAnthropicClient(cfg config.LLMConfig, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required (set MITRA_ANTHROPIC_API_KEY)")
	}

	model := cfg.Model
	if model == "" {
		model = anthropicDefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	ac := sdk.NewClient(opts...)

	return &AnthropicClient{
		msg:     &ac.Messages,
		model:   model,
		cfg:     cfg,
		logger:  logger.Named("llm.anthropic"),
		limiter: newLimiter(cfg),
	}, nil
}

// Call sends the prompt as a single user message. An answer with no text
// blocks yields empty output so callers can fall back to templated text.
func (c *AnthropicClient) Call(ctx context.Context, prompt, language string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter interrupted: %w", err)
	}

	maxTokens := c.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicFallbackTokens
	}
	params := sdk.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(prompt))},
		Model:     sdk.Model(c.model),
		System:    []sdk.TextBlockParam{{Text: systemInstruction(language)}},
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = sdk.Float(c.cfg.Temperature)
	}

	startTime := time.Now()
	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			text = block.Text
			break
		}
	}

	c.logger.Info("LLM generation complete (Anthropic)",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
		zap.String("stop_reason", string(msg.StopReason)),
	)

	return text, nil
}
