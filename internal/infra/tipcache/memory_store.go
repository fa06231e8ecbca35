// Package tipcache provides the persistence backends for generated daily tip
// sets. Every backend enforces the same invariant: at most one entry per
// (user, window start), resolved atomically in favor of the first writer.
package tipcache

import (
	"context"
	"sync"
	"time"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
)

type memoryKey struct {
	userID      int64
	windowStart int64
}

// MemoryStore is an in-memory dailytips.Cache used for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[memoryKey]dailytips.CachedTipSet
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[memoryKey]dailytips.CachedTipSet)}
}

// Lookup implements dailytips.Cache.
func (s *MemoryStore) Lookup(_ context.Context, userID int64, at time.Time) (dailytips.CachedTipSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for key, entry := range s.entries {
		if key.userID == userID && entry.Window.Contains(at) {
			return entry, true, nil
		}
	}
	return dailytips.CachedTipSet{}, false, nil
}

// Store implements dailytips.Cache. A concurrent writer that already created
// the same (user, window start) entry wins; the loser gets the winner back.
func (s *MemoryStore) Store(_ context.Context, userID int64, window dailytips.DayWindow, tips dailytips.TipsByCategory) (dailytips.CachedTipSet, error) {
	key := memoryKey{userID: userID, windowStart: window.Start.Unix()}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[key]; ok {
		return existing, nil
	}
	entry := dailytips.CachedTipSet{
		UserID:    userID,
		Window:    window,
		Tips:      tips,
		CreatedAt: time.Now(),
	}
	s.entries[key] = entry
	return entry, nil
}

// PurgeExpired implements dailytips.Cache.
func (s *MemoryStore) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var purged int64
	for key, entry := range s.entries {
		if entry.Window.End.Before(before) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged, nil
}

// Len reports the number of stored entries. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ dailytips.Cache = (*MemoryStore)(nil)
