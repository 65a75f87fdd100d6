// Package aicache implements the AI response cache store using PostgreSQL.
package aicache

import (
	"context"
	"fmt"
	"time"

	postgres "github.com/vadea/vadea-backend/internal/adapter/postgres"
	"github.com/vadea/vadea-backend/internal/domain"
)

// Repo stores cached AI responses in the ai_cache table.
type Repo struct {
	db postgres.Querier
}

// New creates a new cache repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT key, endpoint, payload, created_at, expires_at, hit_count
FROM ai_cache
WHERE key = $1`

// A rewrite restarts the entry: the payload, timestamps and hit count are replaced.
const upsertSQL = `
INSERT INTO ai_cache (key, endpoint, payload, created_at, expires_at, hit_count)
VALUES ($1, $2, $3, $4, $5, 0)
ON CONFLICT (key) DO UPDATE
SET endpoint = EXCLUDED.endpoint,
    payload = EXCLUDED.payload,
    created_at = EXCLUDED.created_at,
    expires_at = EXCLUDED.expires_at,
    hit_count = 0`

const incrementHitsSQL = `UPDATE ai_cache SET hit_count = hit_count + 1 WHERE key = $1`

const deleteExpiredSQL = `DELETE FROM ai_cache WHERE expires_at <= $1`

// Get returns the entry stored under key, live or not.
// Returns domain.ErrNotFound when nothing is stored.
func (r *Repo) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	var e domain.CacheEntry
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, key).
		Scan(&e.Key, &e.Endpoint, &e.Payload, &e.CreatedAt, &e.ExpiresAt, &e.HitCount)
	if err != nil {
		return nil, postgres.MapError(err, "ai_cache", key)
	}
	return &e, nil
}

// Upsert writes the entry, replacing any previous one under the same key.
func (r *Repo) Upsert(ctx context.Context, e *domain.CacheEntry) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertSQL,
		e.Key, e.Endpoint, e.Payload, e.CreatedAt, e.ExpiresAt,
	)
	if err != nil {
		return postgres.MapError(err, "ai_cache", e.Key)
	}
	return nil
}

// IncrementHits bumps the hit counter. A missing key is not an error.
func (r *Repo) IncrementHits(ctx context.Context, key string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementHitsSQL, key); err != nil {
		return postgres.MapError(err, "ai_cache", key)
	}
	return nil
}

// DeleteExpired removes entries whose expiry is at or before now.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired ai_cache: %w", err)
	}
	return tag.RowsAffected(), nil
}
