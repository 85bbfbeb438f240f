// internal/llm/openai.go
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/janmitra/mitra-cli/internal/config"
)

const openAIDefaultModel = "gpt-4o-mini"

// chatClient captures the subset of the go-openai client the provider uses,
// so tests can substitute a stub.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient implements Provider via the OpenAI Chat Completions API.
type OpenAIClient struct {
	chat    chatClient
	model   string
	cfg     config.LLMConfig
	logger  *zap.Logger
	limiter *rate.Limiter
}

var _ Provider = (*OpenAIClient)(nil)

// NewOpenAIClient initializes the client.
func NewOpenAIClient(cfg config.LLMConfig, logger *zap.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openAI API key is required (set MITRA_OPENAI_API_KEY)")
	}

	model := cfg.Model
	if model == "" {
		model = openAIDefaultModel
	}

	var client *openai.Client
	if cfg.Endpoint != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		clientCfg.BaseURL = cfg.Endpoint
		client = openai.NewClientWithConfig(clientCfg)
	} else {
		client = openai.NewClient(cfg.APIKey)
	}

	return &OpenAIClient{
		chat:    client,
		model:   model,
		cfg:     cfg,
		logger:  logger.Named("llm.openai"),
		limiter: newLimiter(cfg),
	}, nil
}

// Call sends the prompt as a single-turn chat completion.
func (c *OpenAIClient) Call(ctx context.Context, prompt, language string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter interrupted: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction(language)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
	}

	startTime := time.Now()
	resp, err := c.chat.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai API returned no choices")
	}

	c.logger.Info("LLM generation complete (OpenAI)",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return resp.Choices[0].Message.Content, nil
}
