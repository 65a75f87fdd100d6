package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/pkg/ctxutil"
)

// CreateCard adds a NEW card to one of the user's decks.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Check deck ownership
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	card, err := s.cards.Create(ctx, s.NewCard(userID, input.DeckID, domain.CardContent{
		Front: input.Front,
		Back:  input.Back,
		Media: input.Media,
		Tags:  input.Tags,
	}))
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", input.DeckID.String()),
	)

	return card, nil
}

// NewCard builds an unsaved NEW card with default scheduling state.
func (s *Service) NewCard(userID, deckID uuid.UUID, content domain.CardContent) *domain.Card {
	now := s.clock.Now()
	media := content.Media
	if media == nil {
		media = []string{}
	}
	return &domain.Card{
		ID:           uuid.New(),
		UserID:       userID,
		DeckID:       deckID,
		Front:        strings.TrimSpace(content.Front),
		Back:         strings.TrimSpace(content.Back),
		Media:        media,
		Tags:         domain.NormalizeTags(content.Tags),
		State:        domain.CardStateNew,
		IntervalDays: 0,
		EaseFactor:   s.srsConfig.DefaultEaseFactor,
		Repetitions:  0,
		DueAt:        now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ListCards returns a page of a deck's cards and the total count.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]*domain.Card, int, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	filter := domain.CardFilter{
		State:  input.State,
		Limit:  limit,
		Offset: input.Offset,
	}
	if input.Tag != nil {
		tag := domain.NormalizeText(*input.Tag)
		filter.Tag = &tag
	}

	cards, total, err := s.cards.List(ctx, userID, input.DeckID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list cards: %w", err)
	}
	return cards, total, nil
}

// UpdateCard changes a card's content. Scheduling state is untouched.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Card

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByIDForUpdate(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		content := domain.CardContent{
			Front: card.Front,
			Back:  card.Back,
			Media: card.Media,
			Tags:  card.Tags,
		}
		if input.Front != nil {
			content.Front = strings.TrimSpace(*input.Front)
		}
		if input.Back != nil {
			content.Back = strings.TrimSpace(*input.Back)
		}
		if input.Media != nil {
			content.Media = *input.Media
		}
		if input.Tags != nil {
			content.Tags = domain.NormalizeTags(*input.Tags)
		}

		updated, err = s.cards.UpdateContent(txCtx, userID, input.CardID, content)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return updated, nil
}

// DeleteCard deletes a card.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
	)

	return nil
}
