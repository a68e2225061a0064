package adapter

import "context"

// EventPublisher mirrors store events to observers outside this process,
// e.g. over Redis pub/sub. Publishing is best-effort: failures must never
// affect the store's own synchronous emission.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}
