// Package anthropic adapts the Anthropic Messages API to the advisor's
// text-generation collaborator.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vadea/vadea-backend/internal/domain"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("anthropic: empty response")

// Config holds client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxTokens  int64
	Timeout    time.Duration
	MaxRetries int
}

// Client generates text with a Claude model.
type Client struct {
	client    sdk.Client
	model     sdk.Model
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client. BaseURL is only set for tests and proxies.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		client:    sdk.NewClient(opts...),
		model:     sdk.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Generate sends history followed by prompt and returns the concatenated text
// blocks of the reply.
func (c *Client) Generate(ctx context.Context, system, prompt string, history []domain.ChatTurn) (string, error) {
	messages := make([]sdk.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		block := sdk.NewTextBlock(turn.Content)
		if turn.Role == domain.ChatRoleAssistant {
			messages = append(messages, sdk.NewAssistantMessage(block))
		} else {
			messages = append(messages, sdk.NewUserMessage(block))
		}
	}
	messages = append(messages, sdk.NewUserMessage(sdk.NewTextBlock(prompt)))

	params := sdk.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  messages,
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("model", string(msg.Model)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("took", time.Since(start)),
	)

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
