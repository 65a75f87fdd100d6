package domain

import (
	"time"

	"github.com/google/uuid"
)

// CacheEntry is a memoized AI response keyed by a hash of the normalized request.
type CacheEntry struct {
	Key       string
	Endpoint  string
	Payload   []byte
	CreatedAt time.Time
	ExpiresAt time.Time
	HitCount  int
}

// IsLive reports whether the entry may still be served at now.
func (e *CacheEntry) IsLive(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// ChatTurn is one message of an advisor conversation.
type ChatTurn struct {
	Role    ChatRole
	Content string
}

// ChatReply is the advisor's answer to a chat message.
type ChatReply struct {
	Reply     string
	FromCache bool
}

// GeneratedCards is the result of AI flashcard generation for a deck.
type GeneratedCards struct {
	DeckID    uuid.UUID
	Cards     []*Card
	FromCache bool
}
