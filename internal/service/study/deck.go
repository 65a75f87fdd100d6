package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/pkg/ctxutil"
	"golang.org/x/sync/errgroup"
)

// DeckDetails is a deck together with its derived statistics.
type DeckDetails struct {
	Deck  *domain.Deck
	Stats domain.DeckStats
}

// CreateDeck creates an empty deck for the current user.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	deck, err := s.decks.Create(ctx, &domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Color:       input.Color,
		Icon:        input.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deck.ID.String()),
	)

	return deck, nil
}

// ListDecks returns all decks of the current user.
func (s *Service) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	decks, err := s.decks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// GetDeck returns a deck with its statistics.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (*DeckDetails, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	deck, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	stats, err := s.deckStats(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	return &DeckDetails{Deck: deck, Stats: stats}, nil
}

// DeleteDeck deletes a deck together with its cards and sessions.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return err
	}

	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
	)

	return nil
}

// deckStats runs the independent aggregate queries concurrently.
func (s *Service) deckStats(ctx context.Context, userID, deckID uuid.UUID) (domain.DeckStats, error) {
	now := s.clock.Now()

	var (
		counts            domain.CardStateCounts
		due, mature       int
		correct, reviewed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.cards.CountByState(gctx, userID, deckID)
		if err != nil {
			return fmt.Errorf("count by state: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		due, err = s.cards.CountDue(gctx, userID, deckID, now)
		if err != nil {
			return fmt.Errorf("count due: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mature, err = s.cards.CountMature(gctx, userID, deckID, s.srsConfig.MatureIntervalDays)
		if err != nil {
			return fmt.Errorf("count mature: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		correct, reviewed, err = s.sessions.Retention(gctx, userID, deckID)
		if err != nil {
			return fmt.Errorf("retention: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.DeckStats{}, fmt.Errorf("deck stats: %w", err)
	}

	stats := domain.DeckStats{
		Total:    counts.Total,
		New:      counts.New,
		Learning: counts.Learning,
		Review:   counts.Review,
		Due:      due,
		Mature:   mature,
	}
	if reviewed > 0 {
		stats.RetentionRate = float64(correct) / float64(reviewed)
	}
	return stats, nil
}
