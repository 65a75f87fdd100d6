package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vadea/vadea-backend/internal/aicache"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/pkg/ctxutil"
)

// ErrNoCardsGenerated is returned when the model reply holds no usable card.
var ErrNoCardsGenerated = errors.New("advisor: no cards generated")

const maxGeneratedFieldLen = 10_000

type flashcardParams struct {
	SourceText string `json:"source_text"`
	Count      int    `json:"count"`
}

type generatedCard struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Tags  []string `json:"tags,omitempty"`
}

// GenerateFlashcards asks the model for cards about the source text and adds
// them to the deck as NEW cards in one transaction.
func (s *Service) GenerateFlashcards(ctx context.Context, input GenerateFlashcardsInput) (*domain.GeneratedCards, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	count := input.Count
	if count == 0 {
		count = defaultCardCount
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	if err := s.checkLimit(ctx, userID, endpointFlashcards); err != nil {
		return nil, err
	}

	params := flashcardParams{SourceText: strings.TrimSpace(input.SourceText), Count: count}
	generated, fromCache, err := aicache.WithCache(ctx, s.cache, endpointFlashcards, params, func(ctx context.Context) ([]generatedCard, error) {
		text, err := s.gen.Generate(ctx, flashcardsSystemPrompt, flashcardsPrompt(params.SourceText, count), nil)
		if err != nil {
			return nil, err
		}
		return parseFlashcards(text, count)
	})
	if err != nil {
		return nil, fmt.Errorf("advisor flashcards: %w", err)
	}

	created := make([]*domain.Card, 0, len(generated))
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, g := range generated {
			card, err := s.cards.Create(ctx, s.factory.NewCard(userID, input.DeckID, domain.CardContent{
				Front: g.Front,
				Back:  g.Back,
				Tags:  g.Tags,
			}))
			if err != nil {
				return fmt.Errorf("create card: %w", err)
			}
			created = append(created, card)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flashcards generated",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.Int("count", len(created)),
		slog.Bool("from_cache", fromCache),
	)

	return &domain.GeneratedCards{DeckID: input.DeckID, Cards: created, FromCache: fromCache}, nil
}

// parseFlashcards extracts the JSON array from a model reply and keeps at
// most limit well-formed cards.
func parseFlashcards(text string, limit int) ([]generatedCard, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array in reply", ErrNoCardsGenerated)
	}

	var raw []generatedCard
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCardsGenerated, err)
	}

	cards := make([]generatedCard, 0, min(len(raw), limit))
	for _, c := range raw {
		if len(cards) == limit {
			break
		}
		c.Front = strings.TrimSpace(c.Front)
		c.Back = strings.TrimSpace(c.Back)
		if c.Front == "" || c.Back == "" {
			continue
		}
		if utf8.RuneCountInString(c.Front) > maxGeneratedFieldLen || utf8.RuneCountInString(c.Back) > maxGeneratedFieldLen {
			continue
		}
		c.Tags = domain.NormalizeTags(c.Tags)
		cards = append(cards, c)
	}

	if len(cards) == 0 {
		return nil, ErrNoCardsGenerated
	}
	return cards, nil
}
