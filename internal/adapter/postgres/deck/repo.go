// Package deck implements the Deck repository using PostgreSQL.
package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vadea/vadea-backend/internal/adapter/postgres"
	"github.com/vadea/vadea-backend/internal/domain"
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const deckColumns = `id, user_id, name, description, color, icon, created_at, updated_at`

const createSQL = `
INSERT INTO decks (id, user_id, name, description, color, icon, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + deckColumns

const getByIDSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE id = $1 AND user_id = $2`

const listSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE user_id = $1
ORDER BY created_at ASC, id ASC`

const deleteSQL = `DELETE FROM decks WHERE id = $1 AND user_id = $2`

type deckRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	Icon        string    `db:"icon"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r deckRow) toDomain() *domain.Deck {
	return &domain.Deck{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Icon:        r.Icon,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a deck and returns the persisted row.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	var row deckRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		d.ID, d.UserID, d.Name, d.Description, d.Color, d.Icon, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "deck", d.ID)
	}
	return row.toDomain(), nil
}

// GetByID returns a deck filtered by owner.
// Returns domain.ErrNotFound if the deck does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	var row deckRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, deckID, userID); err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}
	return row.toDomain(), nil
}

// List returns all decks of a user, oldest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	var rows []deckRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]*domain.Deck, 0, len(rows))
	for _, row := range rows {
		decks = append(decks, row.toDomain())
	}
	return decks, nil
}

// Delete removes a deck together with its cards and sessions.
func (r *Repo) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, deckID, userID)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}
	return nil
}
