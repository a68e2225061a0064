package capture

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/finance-dashboard/agent/internal/application/classifier"
	"github.com/finance-dashboard/agent/internal/application/store"
	syncmgr "github.com/finance-dashboard/agent/internal/application/sync"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

type memoryRecordRepo struct {
	records map[entity.Collection][]entity.Record
}

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{records: make(map[entity.Collection][]entity.Record)}
}

func (r *memoryRecordRepo) Migrate(context.Context) error { return nil }

func (r *memoryRecordRepo) LoadAll(_ context.Context, c entity.Collection) ([]entity.Record, error) {
	return r.records[c], nil
}

func (r *memoryRecordRepo) Save(_ context.Context, record entity.Record) error {
	c := record.RecordCollection()
	r.records[c] = append(r.records[c], record)
	return nil
}

func (r *memoryRecordRepo) Update(context.Context, entity.Record) error { return nil }

func (r *memoryRecordRepo) Delete(context.Context, entity.Collection, string) error { return nil }

type memoryQueue struct {
	items []*entity.SyncItem
}

func (q *memoryQueue) Append(_ context.Context, item *entity.SyncItem) error {
	q.items = append(q.items, item)
	return nil
}

func (q *memoryQueue) List(context.Context) ([]*entity.SyncItem, error) { return q.items, nil }

func (q *memoryQueue) Remove(_ context.Context, id string) error {
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (q *memoryQueue) Count(context.Context) (int64, error) { return int64(len(q.items)), nil }

type scriptedAPI struct {
	err    error
	pushes int
}

func (a *scriptedAPI) Push(context.Context, entity.Collection, json.RawMessage) error {
	a.pushes++
	return a.err
}

type staticMonitor struct{ online bool }

func (m *staticMonitor) Online() bool                       { return m.online }
func (m *staticMonitor) Subscribe(func(online bool)) func() { return func() {} }

type stubAI struct {
	record entity.Record
	err    error
	calls  int
}

func (s *stubAI) IsAvailable() bool { return true }

func (s *stubAI) Classify(context.Context, string, entity.Kind) (entity.Record, error) {
	s.calls++
	return s.record, s.err
}

type harness struct {
	useCase *CaptureUtteranceUseCase
	repo    *memoryRecordRepo
	queue   *memoryQueue
	api     *scriptedAPI
	records *store.RecordStore
}

func newHarness(t *testing.T, online bool, ai *stubAI) *harness {
	t.Helper()

	repo := newMemoryRecordRepo()
	records := store.NewRecordStore(repo, nil, nil)
	if err := records.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	queue := &memoryQueue{}
	api := &scriptedAPI{}
	monitor := &staticMonitor{online: online}
	manager := syncmgr.NewManager(queue, api, monitor, syncmgr.Config{
		PollInterval: time.Hour,
		ItemTimeout:  time.Second,
	})

	rules := classifier.NewRuleBased(valueobject.DefaultFormatter())

	h := &harness{repo: repo, queue: queue, api: api, records: records}
	if ai != nil {
		h.useCase = NewCaptureUtteranceUseCase(rules, ai, records, manager, monitor)
	} else {
		h.useCase = NewCaptureUtteranceUseCase(rules, nil, records, manager, monitor)
	}
	return h
}

func TestCaptureOnlineDeliversDirectly(t *testing.T) {
	h := newHarness(t, true, nil)

	output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
		Text: "I have stocks worth 50000",
		Kind: entity.KindAsset,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !output.Matched || output.Source != "rules" {
		t.Errorf("output = %+v, want a rules match", output)
	}
	if output.Queued {
		t.Error("online capture should not queue")
	}
	if h.api.pushes != 1 {
		t.Errorf("expected 1 direct push, got %d", h.api.pushes)
	}
	if len(h.records.GetAll(entity.CollectionAssets)) != 1 {
		t.Error("record missing from the local store")
	}
	if len(h.queue.items) != 0 {
		t.Errorf("queue holds %d items, want 0", len(h.queue.items))
	}
}

func TestCaptureOfflineQueues(t *testing.T) {
	h := newHarness(t, false, nil)

	output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
		Text: "spent 200 on coffee",
		Kind: entity.KindDailyExpense,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !output.Matched || !output.Queued {
		t.Errorf("output = %+v, want matched and queued", output)
	}
	if h.api.pushes != 0 {
		t.Errorf("offline capture pushed %d times, want 0", h.api.pushes)
	}
	if len(h.queue.items) != 1 {
		t.Fatalf("queue holds %d items, want 1", len(h.queue.items))
	}
	if h.queue.items[0].Type != entity.CollectionDailyExpenses {
		t.Errorf("queued collection = %s, want dailyExpenses", h.queue.items[0].Type)
	}
	// The store write happens even though the upload is deferred.
	if len(h.records.GetAll(entity.CollectionDailyExpenses)) != 1 {
		t.Error("record missing from the local store")
	}
}

func TestCaptureFailedDeliveryFallsBackToQueue(t *testing.T) {
	h := newHarness(t, true, nil)
	h.api.err = errors.New("server error")

	output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
		Text: "I have stocks worth 50000",
		Kind: entity.KindAsset,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !output.Queued {
		t.Error("failed direct delivery should queue the record")
	}
	if len(h.queue.items) != 1 {
		t.Errorf("queue holds %d items, want 1", len(h.queue.items))
	}
}

func TestCaptureMissIsNotAnError(t *testing.T) {
	h := newHarness(t, false, nil)

	output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
		Text: "hello there",
		Kind: entity.KindAsset,
	})
	if err != nil {
		t.Fatalf("a miss must not be an error, got %v", err)
	}
	if output.Matched {
		t.Error("expected a miss")
	}
	if len(h.records.GetAll(entity.CollectionAssets)) != 0 {
		t.Error("a miss must not store anything")
	}
}

func TestCaptureAIFallback(t *testing.T) {
	t.Run("used when rules miss and online", func(t *testing.T) {
		aiRecord := entity.NewAsset("Vintage Guitar", "₹30,000", "Other", "2026-08-29", "0%", entity.TrendUp)
		ai := &stubAI{record: aiRecord}
		h := newHarness(t, true, ai)

		output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
			Text: "hello there",
			Kind: entity.KindAsset,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		if !output.Matched || output.Source != "ai" {
			t.Errorf("output = %+v, want an ai match", output)
		}
		if ai.calls != 1 {
			t.Errorf("ai called %d times, want 1", ai.calls)
		}
	})

	t.Run("skipped while offline", func(t *testing.T) {
		ai := &stubAI{record: entity.NewAsset("X", "₹1", "Other", "", "0%", entity.TrendUp)}
		h := newHarness(t, false, ai)

		output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
			Text: "hello there",
			Kind: entity.KindAsset,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Matched {
			t.Error("offline miss must not consult the online classifier")
		}
		if ai.calls != 0 {
			t.Errorf("ai called %d times while offline, want 0", ai.calls)
		}
	})

	t.Run("ai failure degrades to a miss", func(t *testing.T) {
		ai := &stubAI{err: errors.New("quota exceeded")}
		h := newHarness(t, true, ai)

		output, err := h.useCase.Execute(context.Background(), CaptureUtteranceInput{
			Text: "hello there",
			Kind: entity.KindAsset,
		})
		if err != nil {
			t.Fatalf("ai failure must not fail the capture, got %v", err)
		}
		if output.Matched {
			t.Error("expected a miss when the online classifier errors")
		}
	})
}
