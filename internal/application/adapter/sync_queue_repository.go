package adapter

import (
	"context"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// SyncQueueRepository durably stores records pending upload. Every
// mutation is written through synchronously so the queue survives an
// agent restart.
type SyncQueueRepository interface {
	// Append adds an item to the tail of the queue.
	Append(ctx context.Context, item *entity.SyncItem) error

	// List returns all queued items in enqueue (FIFO) order.
	List(ctx context.Context) ([]*entity.SyncItem, error)

	// Remove deletes the item with the given id from the queue.
	Remove(ctx context.Context, id string) error

	// Count returns the number of queued items.
	Count(ctx context.Context) (int64, error)
}
