package entity

import (
	"encoding/json"
	"time"
)

// SyncItem wraps a record created while offline, pending upload to the
// dashboard API. Its ID mirrors the wrapped record's id so the server can
// deduplicate replayed POSTs.
type SyncItem struct {
	ID        string          `json:"id"`
	Type      Collection      `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"createdAt"` // epoch milliseconds
}

// NewSyncItem wraps a record for queuing, capturing its full payload.
func NewSyncItem(record Record, now time.Time) (*SyncItem, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	return &SyncItem{
		ID:        record.RecordID(),
		Type:      record.RecordCollection(),
		Data:      data,
		CreatedAt: now.UnixMilli(),
	}, nil
}
