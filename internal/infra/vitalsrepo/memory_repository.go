package vitalsrepo

import (
	"context"
	"sync"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
)

// MemoryRepository is an in-memory vitals.SnapshotSource used for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[int64][]vitals.Snapshot
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[int64][]vitals.Snapshot)}
}

// Record appends a snapshot for a user. Test/dev helper.
func (r *MemoryRepository) Record(snapshot vitals.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[snapshot.UserID] = append(r.byUser[snapshot.UserID], snapshot)
}

// LatestFor implements vitals.SnapshotSource.
func (r *MemoryRepository) LatestFor(_ context.Context, userID int64) (vitals.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	history := r.byUser[userID]
	if len(history) == 0 {
		return vitals.Snapshot{}, false, nil
	}
	latest := history[0]
	for _, candidate := range history[1:] {
		if !candidate.ObservedAt.Before(latest.ObservedAt) {
			latest = candidate
		}
	}
	return latest, true, nil
}

var _ vitals.SnapshotSource = (*MemoryRepository)(nil)
