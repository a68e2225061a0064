package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/integration/persistence/model"
)

// syncQueueRepository implements adapter.SyncQueueRepository over a
// single auto-incrementing table so enqueue order survives restarts.
type syncQueueRepository struct {
	db *gorm.DB
}

// NewSyncQueueRepository creates a new sync queue repository instance.
func NewSyncQueueRepository(db *gorm.DB) adapter.SyncQueueRepository {
	return &syncQueueRepository{
		db: db,
	}
}

// Append adds an item to the tail of the queue.
func (r *syncQueueRepository) Append(ctx context.Context, item *entity.SyncItem) error {
	return r.db.WithContext(ctx).Create(model.SyncItemFromEntity(item)).Error
}

// List returns all queued items in enqueue (FIFO) order.
func (r *syncQueueRepository) List(ctx context.Context) ([]*entity.SyncItem, error) {
	var models []model.SyncItemModel
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.SyncItem, len(models))
	for i := range models {
		items[i] = models[i].ToEntity()
	}
	return items, nil
}

// Remove deletes the item with the given id from the queue.
func (r *syncQueueRepository) Remove(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.SyncItemModel{}, "item_id = ?", id).Error
}

// Count returns the number of queued items.
func (r *syncQueueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SyncItemModel{}).Count(&count).Error
	return count, err
}
