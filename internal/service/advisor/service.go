// Package advisor implements the AI study advisor: free-form chat and
// flashcard generation. Every call is rate limited per user and memoized in
// the AI response cache.
package advisor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vadea/vadea-backend/internal/aicache"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/internal/ratelimit"
)

const (
	endpointChat       = "advisor.chat"
	endpointFlashcards = "advisor.flashcards"
)

type generator interface {
	Generate(ctx context.Context, system, prompt string, history []domain.ChatTurn) (string, error)
}

type limiter interface {
	Check(identifier string) ratelimit.Result
}

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

type cardRepo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
}

// cardFactory builds unsaved NEW cards with the study defaults.
type cardFactory interface {
	NewCard(userID, deckID uuid.UUID, content domain.CardContent) *domain.Card
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the study advisor.
type Service struct {
	gen     generator
	limiter limiter
	cache   *aicache.Cache
	decks   deckRepo
	cards   cardRepo
	factory cardFactory
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new advisor service.
func NewService(
	log *slog.Logger,
	gen generator,
	limiter limiter,
	cache *aicache.Cache,
	decks deckRepo,
	cards cardRepo,
	factory cardFactory,
	tx txManager,
) *Service {
	return &Service{
		gen:     gen,
		limiter: limiter,
		cache:   cache,
		decks:   decks,
		cards:   cards,
		factory: factory,
		tx:      tx,
		log:     log.With("service", "advisor"),
	}
}

// checkLimit consumes one request from the user's window.
func (s *Service) checkLimit(ctx context.Context, userID uuid.UUID, endpoint string) error {
	res := s.limiter.Check(userID.String())
	if res.Limited {
		s.log.InfoContext(ctx, "advisor rate limited",
			slog.String("user_id", userID.String()),
			slog.String("endpoint", endpoint),
			slog.Time("reset_at", res.ResetTime),
		)
		return &domain.RateLimitError{ResetAt: res.ResetTime}
	}
	return nil
}
