package sync

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
)

// fakeQueue is an in-memory SyncQueueRepository.
type fakeQueue struct {
	mu    sync.Mutex
	items []*entity.SyncItem
}

func (q *fakeQueue) Append(_ context.Context, item *entity.SyncItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, item)
	return nil
}

func (q *fakeQueue) List(context.Context) ([]*entity.SyncItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*entity.SyncItem, len(q.items))
	copy(out, q.items)
	return out, nil
}

func (q *fakeQueue) Remove(_ context.Context, id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (q *fakeQueue) Count(context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}

// fakeAPI records pushes and fails each item until its failure budget
// is spent.
type fakeAPI struct {
	mu       sync.Mutex
	pushed   []entity.Collection
	failures map[string]int // record id -> remaining failures
	failAll  bool
	block    chan struct{} // when set, Push waits until closed
}

func (a *fakeAPI) Push(_ context.Context, collection entity.Collection, data json.RawMessage) error {
	if a.block != nil {
		<-a.block
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failAll {
		return errors.New("server unreachable")
	}

	var payload struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(data, &payload)
	if remaining, ok := a.failures[payload.ID]; ok && remaining > 0 {
		a.failures[payload.ID] = remaining - 1
		return errors.New("transient failure")
	}

	a.pushed = append(a.pushed, collection)
	return nil
}

// fakeMonitor is a manually-driven ConnectivityMonitor.
type fakeMonitor struct {
	mu     sync.Mutex
	online bool
	subs   []func(bool)
}

func (m *fakeMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *fakeMonitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := append([]func(bool){}, m.subs...)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(online)
	}
}

func (m *fakeMonitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
	return func() {}
}

func newTestManager(queue *fakeQueue, api *fakeAPI, monitor *fakeMonitor) *Manager {
	return NewManager(queue, api, monitor, Config{
		PollInterval: time.Hour, // keep the ticker quiet in tests
		ItemTimeout:  time.Second,
	})
}

func enqueueAsset(t *testing.T, m *Manager, title string) *entity.Asset {
	t.Helper()
	asset := entity.NewAsset(title, "₹100", "Savings", "2026-08-01", "+1%", entity.TrendUp)
	if err := m.Enqueue(context.Background(), asset); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	return asset
}

func TestDrainEmptyQueue(t *testing.T) {
	m := newTestManager(&fakeQueue{}, &fakeAPI{}, &fakeMonitor{online: true})

	result, err := m.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if result.Success != 0 || result.Failed != 0 {
		t.Errorf("empty drain reported %+v, want zeros", result)
	}
}

func TestDrainDeliversInFIFOOrder(t *testing.T) {
	queue := &fakeQueue{}
	api := &fakeAPI{}
	m := newTestManager(queue, api, &fakeMonitor{online: true})

	enqueueAsset(t, m, "First")
	liability := entity.NewLiability("Loan", "₹500", "Personal Loan", "10%", "₹50", "", entity.LiabilityStatusCurrent)
	if err := m.Enqueue(context.Background(), liability); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	result, err := m.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if result.Success != 2 || result.Failed != 0 {
		t.Fatalf("Drain reported %+v, want 2 successes", result)
	}

	if len(api.pushed) != 2 ||
		api.pushed[0] != entity.CollectionAssets ||
		api.pushed[1] != entity.CollectionLiabilities {
		t.Errorf("delivery order was %v, want assets then liabilities", api.pushed)
	}
	if count, _ := queue.Count(context.Background()); count != 0 {
		t.Errorf("queue still holds %d items after a full drain", count)
	}
}

func TestDrainRetainsFailedItems(t *testing.T) {
	queue := &fakeQueue{}
	m := newTestManager(queue, &fakeAPI{}, &fakeMonitor{online: true})

	failing := enqueueAsset(t, m, "Flaky")
	enqueueAsset(t, m, "Healthy")

	api := &fakeAPI{failures: map[string]int{failing.ID: 1}}
	m.api = api

	// First drain: one failure, one success. The failed item survives.
	result, err := m.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if result.Success != 1 || result.Failed != 1 {
		t.Fatalf("first drain reported %+v, want 1/1", result)
	}
	if count, _ := queue.Count(context.Background()); count != 1 {
		t.Fatalf("expected the failed item to stay queued, queue has %d", count)
	}

	// Second drain: the retained item goes through. At-least-once, not
	// at-most-once.
	result, err = m.Drain(context.Background())
	if err != nil {
		t.Fatalf("second Drain failed: %v", err)
	}
	if result.Success != 1 || result.Failed != 0 {
		t.Errorf("second drain reported %+v, want the retry to succeed", result)
	}
	if count, _ := queue.Count(context.Background()); count != 0 {
		t.Errorf("queue not empty after successful retry")
	}
}

func TestDrainRejectsConcurrentRuns(t *testing.T) {
	queue := &fakeQueue{}
	block := make(chan struct{})
	api := &fakeAPI{block: block}
	m := newTestManager(queue, api, &fakeMonitor{online: true})
	enqueueAsset(t, m, "Slow")

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		_, _ = m.Drain(context.Background())
		close(done)
	}()

	<-started
	// Wait for the first drain to claim the guard.
	for !m.draining.Load() {
		time.Sleep(time.Millisecond)
	}

	_, err := m.Drain(context.Background())
	if !errors.Is(err, domainerror.ErrDrainInProgress) {
		t.Errorf("concurrent Drain returned %v, want ErrDrainInProgress", err)
	}

	close(block)
	<-done

	// The guard is released afterwards.
	if _, err := m.Drain(context.Background()); err != nil {
		t.Errorf("Drain after completion failed: %v", err)
	}
}

func TestStartDrainsOnReconnect(t *testing.T) {
	queue := &fakeQueue{}
	api := &fakeAPI{failAll: true}
	monitor := &fakeMonitor{online: false}

	var mu sync.Mutex
	var results []DrainResult
	m := NewManager(queue, api, monitor, Config{
		PollInterval: time.Hour,
		ItemTimeout:  time.Second,
		Notify: func(result DrainResult) {
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		},
	})

	enqueueAsset(t, m, "Offline capture")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Start(ctx)
	time.Sleep(20 * time.Millisecond)

	// Going online with a dead server: the drain runs and fails.
	monitor.SetOnline(true)
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) == 1 && results[0].Failed == 1
	})

	// Server recovers; the next offline/online cycle replays the item.
	api.mu.Lock()
	api.failAll = false
	api.mu.Unlock()
	monitor.SetOnline(false)
	monitor.SetOnline(true)
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) == 2 && results[1].Success == 1
	})

	if count, _ := queue.Count(context.Background()); count != 0 {
		t.Errorf("queue not empty after reconnect drain")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
