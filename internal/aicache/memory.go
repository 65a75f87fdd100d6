package aicache

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vadea/vadea-backend/internal/domain"
)

// MemoryStore is a bounded in-process Store. The least recently used entry
// is evicted once size is reached.
type MemoryStore struct {
	// mu serializes read-modify-write of a single entry; lru.Cache guards itself otherwise.
	mu      sync.Mutex
	entries *lru.Cache[string, domain.CacheEntry]
}

// NewMemoryStore creates a MemoryStore holding at most size entries.
func NewMemoryStore(size int) (*MemoryStore, error) {
	entries, err := lru.New[string, domain.CacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &MemoryStore{entries: entries}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (*domain.CacheEntry, error) {
	entry, ok := s.entries.Get(key)
	if !ok {
		return nil, fmt.Errorf("cache entry %s: %w", key, domain.ErrNotFound)
	}
	return &entry, nil
}

func (s *MemoryStore) Upsert(_ context.Context, entry *domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries.Add(entry.Key, *entry)
	return nil
}

func (s *MemoryStore) IncrementHits(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries.Peek(key)
	if !ok {
		return nil
	}
	entry.HitCount++
	s.entries.Add(key, entry)
	return nil
}

func (s *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var removed int64
	for _, key := range s.entries.Keys() {
		entry, ok := s.entries.Peek(key)
		if ok && !entry.IsLive(now) {
			s.entries.Remove(key)
			removed++
		}
	}
	return removed, nil
}
