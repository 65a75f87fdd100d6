package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadea/vadea-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDeck creates a deck owned by userID. Returns a filled domain.Deck.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Deck {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	deck := domain.Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Deck " + uniqueSuffix(),
		Color:     "#336699",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decks (id, user_id, name, description, color, icon, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		deck.ID, deck.UserID, deck.Name, deck.Description, deck.Color, deck.Icon, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert: %v", err)
	}

	return deck
}

// SeedNewCard creates a NEW card in the deck, due now.
func SeedNewCard(t *testing.T, pool *pgxpool.Pool, deck domain.Deck) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:         uuid.New(),
		UserID:     deck.UserID,
		DeckID:     deck.ID,
		Front:      "front " + uniqueSuffix(),
		Back:       "back",
		Media:      []string{},
		Tags:       []string{"seed"},
		State:      domain.CardStateNew,
		EaseFactor: 2.5,
		DueAt:      now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	insertCard(t, pool, card)
	return card
}

// SeedReviewCard creates a card in REVIEW state with the given interval and due time.
func SeedReviewCard(t *testing.T, pool *pgxpool.Pool, deck domain.Deck, intervalDays int, dueAt time.Time) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	reviewed := dueAt.Add(-time.Duration(intervalDays) * 24 * time.Hour).UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:             uuid.New(),
		UserID:         deck.UserID,
		DeckID:         deck.ID,
		Front:          "front " + uniqueSuffix(),
		Back:           "back",
		Media:          []string{},
		Tags:           []string{},
		State:          domain.CardStateReview,
		IntervalDays:   intervalDays,
		EaseFactor:     2.5,
		Repetitions:    3,
		DueAt:          dueAt.UTC().Truncate(time.Microsecond),
		LastReviewedAt: &reviewed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	insertCard(t, pool, card)
	return card
}

func insertCard(t *testing.T, pool *pgxpool.Pool, c domain.Card) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, user_id, deck_id, front, back, media, tags, state, interval_days,
		                    ease_factor, repetitions, due_at, last_reviewed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		c.ID, c.UserID, c.DeckID, c.Front, c.Back, c.Media, c.Tags, string(c.State), c.IntervalDays,
		c.EaseFactor, c.Repetitions, c.DueAt, c.LastReviewedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert card: %v", err)
	}
}

// SeedSession creates an ACTIVE review session over the given cards.
func SeedSession(t *testing.T, pool *pgxpool.Pool, deck domain.Deck, cardIDs []uuid.UUID, startedAt time.Time) domain.ReviewSession {
	t.Helper()

	s := domain.ReviewSession{
		ID:        uuid.New(),
		UserID:    deck.UserID,
		DeckID:    deck.ID,
		CardIDs:   cardIDs,
		Status:    domain.SessionStatusActive,
		StartedAt: startedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_sessions (id, user_id, deck_id, card_ids, status, started_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.DeckID, s.CardIDs, string(s.Status), s.StartedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}
