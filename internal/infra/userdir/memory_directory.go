package userdir

import (
	"context"
	"sync"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
)

// MemoryDirectory is an in-memory dailytips.UserDirectory used for tests/dev.
type MemoryDirectory struct {
	mu  sync.RWMutex
	ids []int64
}

// NewMemoryDirectory constructs a directory holding the given ids.
func NewMemoryDirectory(ids ...int64) *MemoryDirectory {
	return &MemoryDirectory{ids: append([]int64(nil), ids...)}
}

// Add registers a user id. Test/dev helper.
func (d *MemoryDirectory) Add(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids = append(d.ids, id)
}

// AllUserIDs implements dailytips.UserDirectory.
func (d *MemoryDirectory) AllUserIDs(context.Context) ([]int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]int64(nil), d.ids...), nil
}

var _ dailytips.UserDirectory = (*MemoryDirectory)(nil)
