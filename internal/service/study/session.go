package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/pkg/ctxutil"
)

// SessionQueue is a freshly started session with its cards in review order.
type SessionQueue struct {
	Session *domain.ReviewSession
	Cards   []*domain.Card
}

// AnswerResult holds the card and session after one answer was applied.
type AnswerResult struct {
	Card    *domain.Card
	Session *domain.ReviewSession
}

// StartSession selects due cards first, then up to the configured number of
// NEW cards, and creates an ACTIVE session over them.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*SessionQueue, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	now := s.clock.Now()

	due, err := s.cards.GetDueCards(ctx, userID, input.DeckID, now, s.srsConfig.MaxReviewsPerSession)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	var fresh []*domain.Card
	if s.srsConfig.NewCardsPerSession > 0 {
		fresh, err = s.cards.GetNewCards(ctx, userID, input.DeckID, s.srsConfig.NewCardsPerSession)
		if err != nil {
			return nil, fmt.Errorf("get new cards: %w", err)
		}
	}

	cards := make([]*domain.Card, 0, len(due)+len(fresh))
	cards = append(cards, due...)
	cards = append(cards, fresh...)
	if len(cards) == 0 {
		return nil, domain.ErrNoCardsAvailable
	}

	cardIDs := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		cardIDs[i] = c.ID
	}

	session, err := s.sessions.Create(ctx, &domain.ReviewSession{
		ID:        uuid.New(),
		UserID:    userID,
		DeckID:    input.DeckID,
		CardIDs:   cardIDs,
		Status:    domain.SessionStatusActive,
		StartedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("due", len(due)),
		slog.Int("new", len(fresh)),
	)

	return &SessionQueue{Session: session, Cards: cards}, nil
}

// AnswerCard schedules one card of an ACTIVE session and updates the
// session counters. Both rows are locked and written in one transaction.
func (s *Service) AnswerCard(ctx context.Context, input AnswerCardInput) (*AnswerResult, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result AnswerResult
	var prevState domain.CardState

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if session.Status.IsFinal() {
			return domain.ErrSessionAlreadyCompleted
		}
		if !session.Contains(input.CardID) {
			return domain.NewValidationError("card_id", "card is not part of this session")
		}

		card, err := s.cards.GetByIDForUpdate(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		prevState = card.State

		now := s.clock.Now()
		out := Schedule(SRSInput{
			State:        card.State,
			IntervalDays: card.IntervalDays,
			EaseFactor:   card.EaseFactor,
			Repetitions:  card.Repetitions,
			Grade:        input.Grade,
			Now:          now,
			Config:       s.srsConfig,
		})

		result.Card, err = s.cards.UpdateSRS(txCtx, userID, card.ID, domain.SRSUpdateParams{
			State:          out.State,
			IntervalDays:   out.IntervalDays,
			EaseFactor:     out.EaseFactor,
			Repetitions:    out.Repetitions,
			DueAt:          out.DueAt,
			LastReviewedAt: now,
		})
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		session.Record(input.Grade)
		result.Session, err = s.sessions.UpdateCounters(txCtx, userID, session.ID, session.Counters())
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("session_id", input.SessionID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("grade", input.Grade.String()),
		slog.String("old_state", prevState.String()),
		slog.String("new_state", result.Card.State.String()),
		slog.Int("interval_days", result.Card.IntervalDays),
	}
	if input.DurationMs != nil {
		attrs = append(attrs, slog.Int("duration_ms", *input.DurationMs))
	}
	s.log.InfoContext(ctx, "card answered", attrs...)

	return &result, nil
}

// CompleteSession finalizes an ACTIVE session and returns its statistics.
// A session can be finalized exactly once.
func (s *Service) CompleteSession(ctx context.Context, input CompleteSessionInput) (*domain.SessionStats, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	session, err := s.finalize(ctx, input.SessionID, domain.SessionStatusCompleted)
	if err != nil {
		return nil, err
	}
	stats := session.Stats()
	return &stats, nil
}

// AbandonSession finalizes an ACTIVE session as abandoned.
func (s *Service) AbandonSession(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	return s.finalize(ctx, sessionID, domain.SessionStatusAbandoned)
}

func (s *Service) finalize(ctx context.Context, sessionID uuid.UUID, status domain.SessionStatus) (*domain.ReviewSession, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	var finalized *domain.ReviewSession

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, sessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if session.Status.IsFinal() {
			return domain.ErrSessionAlreadyCompleted
		}

		endedAt := s.clock.Now()
		durationMs := max(endedAt.Sub(session.StartedAt), 0) / time.Millisecond

		finalized, err = s.sessions.Finalize(txCtx, userID, sessionID, status, endedAt, int64(durationMs))
		if err != nil {
			return fmt.Errorf("finalize session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session finalized",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
		slog.String("status", status.String()),
		slog.Int("cards_reviewed", finalized.CardsReviewed),
	)

	return finalized, nil
}

// GetSession returns one of the user's sessions.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	userID, err := ctxutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ListSessions returns a page of a deck's sessions, newest first, and the total count.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) ([]*domain.ReviewSession, int, error) {
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

	sessions, total, err := s.sessions.ListByDeck(ctx, userID, input.DeckID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, total, nil
}
