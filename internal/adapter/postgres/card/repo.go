// Package card implements the Card repository using PostgreSQL.
// Fixed queries are SQL constants; filtered listings are built with squirrel.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vadea/vadea-backend/internal/adapter/postgres"
	"github.com/vadea/vadea-backend/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const cardColumns = `id, user_id, deck_id, front, back, media, tags, state, interval_days,
       ease_factor, repetitions, due_at, last_reviewed_at, created_at, updated_at`

const createSQL = `
INSERT INTO cards (id, user_id, deck_id, front, back, media, tags, state, interval_days,
                   ease_factor, repetitions, due_at, last_reviewed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + cardColumns

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const updateContentSQL = `
UPDATE cards
SET front = $3, back = $4, media = $5, tags = $6, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + cardColumns

const updateSRSSQL = `
UPDATE cards
SET state = $3, interval_days = $4, ease_factor = $5, repetitions = $6,
    due_at = $7, last_reviewed_at = $8, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + cardColumns

const deleteSQL = `DELETE FROM cards WHERE id = $1 AND user_id = $2`

// Non-new cards whose due time has passed, most overdue first.
const getDueCardsSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND deck_id = $2
  AND state <> 'NEW'
  AND due_at <= $3
ORDER BY due_at ASC, id ASC
LIMIT $4`

const getNewCardsSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND deck_id = $2 AND state = 'NEW'
ORDER BY created_at ASC, id ASC
LIMIT $3`

const countByStateSQL = `
SELECT state, count(*) AS count
FROM cards
WHERE user_id = $1 AND deck_id = $2
GROUP BY state`

const countDueSQL = `
SELECT count(*) FROM cards
WHERE user_id = $1 AND deck_id = $2 AND state <> 'NEW' AND due_at <= $3`

const countMatureSQL = `
SELECT count(*) FROM cards
WHERE user_id = $1 AND deck_id = $2 AND state = 'REVIEW' AND interval_days >= $3`

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type cardRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	DeckID         uuid.UUID  `db:"deck_id"`
	Front          string     `db:"front"`
	Back           string     `db:"back"`
	Media          []string   `db:"media"`
	Tags           []string   `db:"tags"`
	State          string     `db:"state"`
	IntervalDays   int        `db:"interval_days"`
	EaseFactor     float64    `db:"ease_factor"`
	Repetitions    int        `db:"repetitions"`
	DueAt          time.Time  `db:"due_at"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r cardRow) toDomain() *domain.Card {
	media, tags := r.Media, r.Tags
	if media == nil {
		media = []string{}
	}
	if tags == nil {
		tags = []string{}
	}
	return &domain.Card{
		ID:             r.ID,
		UserID:         r.UserID,
		DeckID:         r.DeckID,
		Front:          r.Front,
		Back:           r.Back,
		Media:          media,
		Tags:           tags,
		State:          domain.CardState(r.State),
		IntervalDays:   r.IntervalDays,
		EaseFactor:     r.EaseFactor,
		Repetitions:    r.Repetitions,
		DueAt:          r.DueAt,
		LastReviewedAt: r.LastReviewedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toDomainCards(rows []cardRow) []*domain.Card {
	cards := make([]*domain.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, row.toDomain())
	}
	return cards
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	return r.getOne(ctx, getByIDSQL, userID, cardID)
}

// GetByIDForUpdate is GetByID with a row lock. Call it inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	return r.getOne(ctx, getByIDForUpdateSQL, userID, cardID)
}

func (r *Repo) getOne(ctx context.Context, query string, userID, cardID uuid.UUID) (*domain.Card, error) {
	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, cardID, userID); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return row.toDomain(), nil
}

// List returns one page of a deck's cards plus the total count matching the filter.
func (r *Repo) List(ctx context.Context, userID, deckID uuid.UUID, filter domain.CardFilter) ([]*domain.Card, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.Eq{"deck_id": deckID},
	}
	if filter.State != nil {
		where = append(where, squirrel.Eq{"state": string(*filter.State)})
	}
	if filter.Tag != nil {
		where = append(where, squirrel.Expr("? = ANY(tags)", *filter.Tag))
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("cards").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count cards: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cards: %w", err)
	}

	q := postgres.Builder().
		Select(cardColumns).
		From("cards").
		Where(where).
		OrderBy("created_at ASC", "id ASC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list cards: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, querier, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list cards: %w", err)
	}

	return toDomainCards(rows), total, nil
}

// GetDueCards returns non-new cards due at or before now, most overdue first.
func (r *Repo) GetDueCards(ctx context.Context, userID, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error) {
	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getDueCardsSQL, userID, deckID, now, limit); err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}
	return toDomainCards(rows), nil
}

// GetNewCards returns NEW cards in creation order.
func (r *Repo) GetNewCards(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]*domain.Card, error) {
	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getNewCardsSQL, userID, deckID, limit); err != nil {
		return nil, fmt.Errorf("get new cards: %w", err)
	}
	return toDomainCards(rows), nil
}

// CountByState returns card counts per state for a deck.
func (r *Repo) CountByState(ctx context.Context, userID, deckID uuid.UUID) (domain.CardStateCounts, error) {
	var groups []struct {
		State string `db:"state"`
		Count int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &groups, countByStateSQL, userID, deckID); err != nil {
		return domain.CardStateCounts{}, fmt.Errorf("count cards by state: %w", err)
	}

	var counts domain.CardStateCounts
	for _, g := range groups {
		switch domain.CardState(g.State) {
		case domain.CardStateNew:
			counts.New = g.Count
		case domain.CardStateLearning:
			counts.Learning = g.Count
		case domain.CardStateReview:
			counts.Review = g.Count
		}
		counts.Total += g.Count
	}
	return counts, nil
}

// CountDue returns the number of non-new cards due at or before now.
func (r *Repo) CountDue(ctx context.Context, userID, deckID uuid.UUID, now time.Time) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countDueSQL, userID, deckID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}
	return count, nil
}

// CountMature returns the number of REVIEW cards with interval >= matureDays.
func (r *Repo) CountMature(ctx context.Context, userID, deckID uuid.UUID, matureDays int) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countMatureSQL, userID, deckID, matureDays).Scan(&count); err != nil {
		return 0, fmt.Errorf("count mature cards: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card and returns the persisted row.
// A missing deck results in domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	var row cardRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		c.ID, c.UserID, c.DeckID, c.Front, c.Back, nonNil(c.Media), nonNil(c.Tags), string(c.State),
		c.IntervalDays, c.EaseFactor, c.Repetitions, c.DueAt, c.LastReviewedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "card", c.ID)
	}
	return row.toDomain(), nil
}

// UpdateContent replaces the user-editable fields of a card.
func (r *Repo) UpdateContent(ctx context.Context, userID, cardID uuid.UUID, content domain.CardContent) (*domain.Card, error) {
	var row cardRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateContentSQL,
		cardID, userID, content.Front, content.Back, nonNil(content.Media), nonNil(content.Tags),
	)
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return row.toDomain(), nil
}

// UpdateSRS writes the scheduling fields produced by one review.
func (r *Repo) UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error) {
	var row cardRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSRSSQL,
		cardID, userID, string(params.State), params.IntervalDays, params.EaseFactor, params.Repetitions,
		params.DueAt, params.LastReviewedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return row.toDomain(), nil
}

// Delete removes a card by ID.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, cardID, userID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}
