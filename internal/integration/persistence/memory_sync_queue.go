package persistence

import (
	"context"
	"sync"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// memorySyncQueueRepository keeps queued items in process memory. It
// backs the sync pipeline when no database is available; items do not
// survive a restart.
type memorySyncQueueRepository struct {
	mu    sync.Mutex
	items []*entity.SyncItem
}

// NewMemorySyncQueueRepository creates a volatile, in-memory queue.
func NewMemorySyncQueueRepository() adapter.SyncQueueRepository {
	return &memorySyncQueueRepository{}
}

func (r *memorySyncQueueRepository) Append(_ context.Context, item *entity.SyncItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *memorySyncQueueRepository) List(_ context.Context) ([]*entity.SyncItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.SyncItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memorySyncQueueRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memorySyncQueueRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}
