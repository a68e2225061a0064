package model

import "github.com/finance-dashboard/agent/internal/domain/entity"

// SyncItemModel represents the durable sync queue table. Seq preserves
// enqueue order across restarts.
type SyncItemModel struct {
	Seq       int64  `gorm:"primaryKey;autoIncrement"`
	ItemID    string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Type      string `gorm:"type:varchar(24);not null"`
	Data      []byte `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"` // epoch milliseconds
}

// TableName returns the table name for the SyncItemModel.
func (SyncItemModel) TableName() string {
	return "sync_queue"
}

// ToEntity converts a SyncItemModel to a domain SyncItem.
func (m *SyncItemModel) ToEntity() *entity.SyncItem {
	return &entity.SyncItem{
		ID:        m.ItemID,
		Type:      entity.Collection(m.Type),
		Data:      m.Data,
		CreatedAt: m.CreatedAt,
	}
}

// SyncItemFromEntity creates a SyncItemModel from a domain SyncItem.
func SyncItemFromEntity(item *entity.SyncItem) *SyncItemModel {
	return &SyncItemModel{
		ItemID:    item.ID,
		Type:      string(item.Type),
		Data:      item.Data,
		CreatedAt: item.CreatedAt,
	}
}
