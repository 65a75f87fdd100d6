package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/vadea/vadea-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	Create(ctx context.Context, deck *domain.Deck) (*domain.Deck, error)
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	Delete(ctx context.Context, userID, deckID uuid.UUID) error
}

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	UpdateContent(ctx context.Context, userID, cardID uuid.UUID, content domain.CardContent) (*domain.Card, error)
	UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	List(ctx context.Context, userID, deckID uuid.UUID, filter domain.CardFilter) ([]*domain.Card, int, error)
	GetDueCards(ctx context.Context, userID, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)
	GetNewCards(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]*domain.Card, error)
	CountByState(ctx context.Context, userID, deckID uuid.UUID) (domain.CardStateCounts, error)
	CountDue(ctx context.Context, userID, deckID uuid.UUID, now time.Time) (int, error)
	CountMature(ctx context.Context, userID, deckID uuid.UUID, matureDays int) (int, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReviewSession, error)
	GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReviewSession, error)
	UpdateCounters(ctx context.Context, userID, sessionID uuid.UUID, counters domain.SessionCounters) (*domain.ReviewSession, error)
	Finalize(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus, endedAt time.Time, durationMs int64) (*domain.ReviewSession, error)
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]*domain.ReviewSession, int, error)
	Retention(ctx context.Context, userID, deckID uuid.UUID) (correct, reviewed int, err error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements decks, cards and review sessions.
type Service struct {
	decks     deckRepo
	cards     cardRepo
	sessions  sessionRepo
	tx        txManager
	log       *slog.Logger
	clock     clockwork.Clock
	srsConfig domain.SRSConfig
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	sessions sessionRepo,
	tx txManager,
	clock clockwork.Clock,
	srsConfig domain.SRSConfig,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		decks:     decks,
		cards:     cards,
		sessions:  sessions,
		tx:        tx,
		log:       log.With("service", "study"),
		clock:     clock,
		srsConfig: srsConfig,
	}
}

// SRSConfig returns the scheduling parameters the service was built with.
func (s *Service) SRSConfig() domain.SRSConfig {
	return s.srsConfig
}
