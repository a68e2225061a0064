// Package events mirrors store events to out-of-process observers.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-dashboard/agent/internal/application/adapter"
)

// Envelope is the wire format published on the Redis channel.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	At      int64           `json:"at"` // epoch milliseconds
}

// RedisBridge implements adapter.EventPublisher over Redis pub/sub so UI
// shells running as separate processes can observe store events without
// polling the local API.
type RedisBridge struct {
	client  *redis.Client
	channel string
}

// NewRedisBridge creates a bridge publishing on the given channel.
func NewRedisBridge(client *redis.Client, channel string) *RedisBridge {
	return &RedisBridge{
		client:  client,
		channel: channel,
	}
}

// Publish encodes the event and payload and publishes them. Errors are
// reported to the caller, which treats publishing as best-effort.
func (b *RedisBridge) Publish(ctx context.Context, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	envelope, err := json.Marshal(Envelope{
		Event:   event,
		Payload: data,
		At:      time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, b.channel, envelope).Err()
}

var _ adapter.EventPublisher = (*RedisBridge)(nil)
