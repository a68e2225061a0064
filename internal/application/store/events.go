package store

import (
	"log/slog"
	"sync"
)

// EventDataUpdated fires after every successful mutation and carries the
// full cache snapshot.
const EventDataUpdated = "dataUpdated"

// EventCallback receives the payload of an emitted event.
type EventCallback func(payload any)

type subscriber struct {
	id int
	fn EventCallback
}

// eventBus is a synchronous, ordered observer registry. Emission happens
// on the caller's goroutine; subscribers are invoked in registration
// order and a panicking subscriber never prevents later ones from
// running.
type eventBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscriber
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[string][]subscriber)}
}

// subscribe registers fn for the named event and returns an unsubscribe
// function.
func (b *eventBus) subscribe(event string, fn EventCallback) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[event] = append(b.subs[event], subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[event]
		for i, s := range subs {
			if s.id == id {
				b.subs[event] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// emit delivers payload to every subscriber of event, in order, before
// returning.
func (b *eventBus) emit(event string, payload any) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs[event]))
	copy(subs, b.subs[event])
	b.mu.Unlock()

	for _, s := range subs {
		invoke(event, s, payload)
	}
}

// invoke isolates one subscriber so its panic cannot break the others.
func invoke(event string, s subscriber, payload any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event subscriber panicked",
				"event", event,
				"panic", r,
			)
		}
	}()
	s.fn(payload)
}
