package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vadea/vadea-backend/internal/aicache"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/pkg/ctxutil"
)

type chatTurnParams struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatParams struct {
	Message string           `json:"message"`
	History []chatTurnParams `json:"history"`
}

// Chat answers one advisor message. Identical conversations are served from the cache.
func (s *Service) Chat(ctx context.Context, input ChatInput) (*domain.ChatReply, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkLimit(ctx, userID, endpointChat); err != nil {
		return nil, err
	}

	message := strings.TrimSpace(input.Message)
	params := chatParams{Message: message, History: make([]chatTurnParams, 0, len(input.History))}
	for _, turn := range input.History {
		params.History = append(params.History, chatTurnParams{Role: string(turn.Role), Content: turn.Content})
	}

	reply, fromCache, err := aicache.WithCache(ctx, s.cache, endpointChat, params, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, chatSystemPrompt, message, input.History)
	})
	if err != nil {
		return nil, fmt.Errorf("advisor chat: %w", err)
	}

	s.log.InfoContext(ctx, "advisor chat",
		slog.String("user_id", userID.String()),
		slog.Bool("from_cache", fromCache),
	)

	return &domain.ChatReply{Reply: reply, FromCache: fromCache}, nil
}
