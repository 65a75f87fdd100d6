package domain

import (
	"time"

	"github.com/google/uuid"
)

// EaseFactorFloor is the lowest ease a card may ever carry. The cards table
// enforces the same bound with a CHECK constraint.
const EaseFactorFloor = 1.3

// SRSConfig holds SM-2 style scheduling parameters (pure domain type).
type SRSConfig struct {
	DefaultEaseFactor    float64
	MinEaseFactor        float64
	AgainEasePenalty     float64
	HardEasePenalty      float64
	EasyEaseBonus        float64
	AgainIntervalDays    int
	FirstIntervalDays    int
	SecondIntervalDays   int
	HardIntervalModifier float64
	EasyBonus            float64
	MaxIntervalDays      int
	MatureIntervalDays   int

	NewCardsPerSession   int
	MaxReviewsPerSession int
	StaleSessionAfter    time.Duration
}

// EaseFloor returns the effective minimum ease: the configured one, but
// never below EaseFactorFloor.
func (c SRSConfig) EaseFloor() float64 {
	if c.MinEaseFactor < EaseFactorFloor {
		return EaseFactorFloor
	}
	return c.MinEaseFactor
}

// SRSUpdateParams holds the fields to update on a card after scheduling.
type SRSUpdateParams struct {
	State          CardState
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	DueAt          time.Time
	LastReviewedAt time.Time
}

// ReviewSession tracks one user reviewing one deck from start to finalization.
type ReviewSession struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	DeckID        uuid.UUID
	CardIDs       []uuid.UUID
	Status        SessionStatus
	CardsReviewed int
	CardsCorrect  int
	CardsFailed   int
	CardsHard     int
	StartedAt     time.Time
	EndedAt       *time.Time
	DurationMs    *int64
}

// Contains reports whether the card was selected for this session.
func (s *ReviewSession) Contains(cardID uuid.UUID) bool {
	for _, id := range s.CardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}

// Record applies one answered card to the session counters.
func (s *ReviewSession) Record(grade ReviewGrade) {
	s.CardsReviewed++
	switch grade {
	case ReviewGradeAgain:
		s.CardsFailed++
	case ReviewGradeHard:
		s.CardsHard++
		s.CardsCorrect++
	case ReviewGradeGood, ReviewGradeEasy:
		s.CardsCorrect++
	}
}

// SessionCounters holds the mutable counters persisted after each answer.
type SessionCounters struct {
	CardsReviewed int
	CardsCorrect  int
	CardsFailed   int
	CardsHard     int
}

// Counters returns the session's current counters.
func (s *ReviewSession) Counters() SessionCounters {
	return SessionCounters{
		CardsReviewed: s.CardsReviewed,
		CardsCorrect:  s.CardsCorrect,
		CardsFailed:   s.CardsFailed,
		CardsHard:     s.CardsHard,
	}
}

// SessionStats holds aggregated results of a finalized session.
type SessionStats struct {
	SessionID     uuid.UUID
	Status        SessionStatus
	CardsTotal    int
	CardsReviewed int
	CardsCorrect  int
	CardsFailed   int
	CardsHard     int
	Duration      time.Duration
	AccuracyRate  float64
}

// Stats builds SessionStats from a finalized session.
func (s *ReviewSession) Stats() SessionStats {
	stats := SessionStats{
		SessionID:     s.ID,
		Status:        s.Status,
		CardsTotal:    len(s.CardIDs),
		CardsReviewed: s.CardsReviewed,
		CardsCorrect:  s.CardsCorrect,
		CardsFailed:   s.CardsFailed,
		CardsHard:     s.CardsHard,
	}
	if s.DurationMs != nil {
		stats.Duration = time.Duration(*s.DurationMs) * time.Millisecond
	}
	if s.CardsReviewed > 0 {
		stats.AccuracyRate = float64(s.CardsCorrect) / float64(s.CardsReviewed) * 100
	}
	return stats
}
