package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a flashcard belonging to exactly one Deck, together with its
// spaced-repetition state.
type Card struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DeckID         uuid.UUID
	Front          string
	Back           string
	Media          []string
	Tags           []string
	State          CardState
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	DueAt          time.Time
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDue reports whether a non-new card's due time has passed.
// NEW cards are never "due"; they are introduced separately.
func (c *Card) IsDue(now time.Time) bool {
	if c.State == CardStateNew {
		return false
	}
	return !c.DueAt.After(now)
}

// IsMature reports whether the card's interval has reached the mature threshold.
func (c *Card) IsMature(matureDays int) bool {
	return c.State == CardStateReview && c.IntervalDays >= matureDays
}

// Deck is a named collection of cards owned by a user.
// It carries display metadata only; scheduling state lives on cards.
type Deck struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Color       string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeckStats holds statistics derived from a deck's cards and sessions.
type DeckStats struct {
	Total         int
	New           int
	Learning      int
	Review        int
	Due           int
	Mature        int
	RetentionRate float64
}

// CardStateCounts holds the count of cards per state.
type CardStateCounts struct {
	New      int
	Learning int
	Review   int
	Total    int
}

// CardFilter narrows card listings within a deck.
type CardFilter struct {
	State  *CardState
	Tag    *string
	Limit  int
	Offset int
}

// CardContent holds the user-supplied content of a card.
type CardContent struct {
	Front string
	Back  string
	Media []string
	Tags  []string
}
