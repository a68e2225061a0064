package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestBridge(t *testing.T) (*RedisBridge, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisBridge(client, "finance-dashboard.events"), client
}

func TestRedisBridgePublish(t *testing.T) {
	bridge, client := newTestBridge(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "finance-dashboard.events")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	payload := map[string]string{"id": "abc", "title": "Emergency Fund"}
	if err := bridge.Publish(ctx, "assetAdded", payload); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case msg := <-sub.Channel():
		var envelope Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			t.Fatalf("envelope does not decode: %v", err)
		}
		if envelope.Event != "assetAdded" {
			t.Errorf("Event = %q, want assetAdded", envelope.Event)
		}
		var decoded map[string]string
		if err := json.Unmarshal(envelope.Payload, &decoded); err != nil {
			t.Fatalf("payload does not decode: %v", err)
		}
		if decoded["title"] != "Emergency Fund" {
			t.Errorf("payload = %v, want the original record fields", decoded)
		}
		if envelope.At == 0 {
			t.Error("At timestamp not set")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message arrived on the channel")
	}
}

func TestRedisBridgePublishUnmarshalablePayload(t *testing.T) {
	bridge, _ := newTestBridge(t)

	if err := bridge.Publish(context.Background(), "dataUpdated", func() {}); err == nil {
		t.Error("expected an error for an unencodable payload")
	}
}
