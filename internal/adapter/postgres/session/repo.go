// Package session implements the ReviewSession repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/vadea/vadea-backend/internal/adapter/postgres"
	"github.com/vadea/vadea-backend/internal/domain"
)

// Repo provides review session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, deck_id, card_ids, status, cards_reviewed, cards_correct,
       cards_failed, cards_hard, started_at, ended_at, duration_ms`

const createSQL = `
INSERT INTO review_sessions (id, user_id, deck_id, card_ids, status, started_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM review_sessions
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const updateCountersSQL = `
UPDATE review_sessions
SET cards_reviewed = $3, cards_correct = $4, cards_failed = $5, cards_hard = $6
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'
RETURNING ` + sessionColumns

const finalizeSQL = `
UPDATE review_sessions
SET status = $3, ended_at = $4, duration_ms = $5
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'
RETURNING ` + sessionColumns

const countByDeckSQL = `
SELECT count(*) FROM review_sessions WHERE user_id = $1 AND deck_id = $2`

const listByDeckSQL = `
SELECT ` + sessionColumns + `
FROM review_sessions
WHERE user_id = $1 AND deck_id = $2
ORDER BY started_at DESC, id DESC
LIMIT $3 OFFSET $4`

const retentionSQL = `
SELECT coalesce(sum(cards_correct), 0), coalesce(sum(cards_reviewed), 0)
FROM review_sessions
WHERE user_id = $1 AND deck_id = $2 AND status = 'COMPLETED'`

// Sessions left ACTIVE since before $1 are closed as ABANDONED at $2.
const abandonStaleSQL = `
UPDATE review_sessions
SET status = 'ABANDONED',
    ended_at = $2,
    duration_ms = greatest(0, floor(extract(epoch FROM ($2 - started_at)) * 1000))::bigint
WHERE status = 'ACTIVE' AND started_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, sessionID, userID)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_session", sessionID)
	}

	return session, nil
}

// GetByIDForUpdate is GetByID with a row lock. Call it inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDForUpdateSQL, sessionID, userID)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_session", sessionID)
	}

	return session, nil
}

// ListByDeck returns a deck's sessions, newest first, plus the total count.
func (r *Repo) ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]*domain.ReviewSession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := querier.QueryRow(ctx, countByDeckSQL, userID, deckID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions by deck: %w", err)
	}

	rows, err := querier.Query(ctx, listByDeckSQL, userID, deckID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions by deck: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions by deck: %w", err)
	}

	return sessions, total, nil
}

// Retention sums correct and reviewed answers over the deck's completed sessions.
func (r *Repo) Retention(ctx context.Context, userID, deckID uuid.UUID) (correct, reviewed int, err error) {
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, retentionSQL, userID, deckID).Scan(&correct, &reviewed)
	if err != nil {
		return 0, 0, fmt.Errorf("session retention: %w", err)
	}
	return correct, reviewed, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new ACTIVE session with zeroed counters.
func (r *Repo) Create(ctx context.Context, s *domain.ReviewSession) (*domain.ReviewSession, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.DeckID,
		s.CardIDs,
		string(s.Status),
		s.StartedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_session", s.ID)
	}

	return created, nil
}

// UpdateCounters overwrites the counters of an ACTIVE session.
// Returns domain.ErrNotFound if the session is missing or already finalized.
func (r *Repo) UpdateCounters(ctx context.Context, userID, sessionID uuid.UUID, c domain.SessionCounters) (*domain.ReviewSession, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateCountersSQL,
		sessionID, userID, c.CardsReviewed, c.CardsCorrect, c.CardsFailed, c.CardsHard,
	)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_session", sessionID)
	}

	return session, nil
}

// Finalize moves an ACTIVE session to a final status.
// Returns domain.ErrNotFound if the session is missing or already finalized.
func (r *Repo) Finalize(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	status domain.SessionStatus,
	endedAt time.Time,
	durationMs int64,
) (*domain.ReviewSession, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, finalizeSQL,
		sessionID, userID, string(status), endedAt.UTC().Truncate(time.Microsecond), durationMs,
	)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_session", sessionID)
	}

	return session, nil
}

// AbandonStale closes every session left ACTIVE since before the cutoff.
// Returns the number of sessions closed.
func (r *Repo) AbandonStale(ctx context.Context, before, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, abandonStaleSQL, before, now.UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, fmt.Errorf("abandon stale sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanSession scans a single session row from pgx.Row.
func scanSession(row pgx.Row) (*domain.ReviewSession, error) {
	var (
		s      domain.ReviewSession
		status string
	)

	if err := row.Scan(&s.ID, &s.UserID, &s.DeckID, &s.CardIDs, &status,
		&s.CardsReviewed, &s.CardsCorrect, &s.CardsFailed, &s.CardsHard,
		&s.StartedAt, &s.EndedAt, &s.DurationMs); err != nil {
		return nil, err
	}

	s.Status = domain.SessionStatus(status)
	if s.CardIDs == nil {
		s.CardIDs = []uuid.UUID{}
	}

	return &s, nil
}

// scanSessions scans multiple session rows from pgx.Rows.
func scanSessions(rows pgx.Rows) ([]*domain.ReviewSession, error) {
	sessions := []*domain.ReviewSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
