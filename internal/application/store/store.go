// Package store implements the local record store: the single source of
// truth for financial records during a session. It bridges the local
// database and reactive observers.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

// RecordStore owns the in-memory cache of every record collection,
// persists mutations through the injected repository and emits typed
// events so observers can react without re-reading the database.
//
// The cache has a single writer: all mutations go through RecordStore
// methods, serialized by its mutex.
type RecordStore struct {
	repo      adapter.RecordRepository
	meta      adapter.MetaRepository
	publisher adapter.EventPublisher
	bus       *eventBus

	mu       sync.RWMutex
	cache    map[entity.Collection][]entity.Record
	degraded bool
}

// NewRecordStore creates a store with injected dependencies. meta and
// publisher may be nil.
func NewRecordStore(
	repo adapter.RecordRepository,
	meta adapter.MetaRepository,
	publisher adapter.EventPublisher,
) *RecordStore {
	cache := make(map[entity.Collection][]entity.Record)
	for _, c := range entity.Collections() {
		cache[c] = nil
	}

	return &RecordStore{
		repo:      repo,
		meta:      meta,
		publisher: publisher,
		bus:       newEventBus(),
		cache:     cache,
	}
}

// Initialize opens the collections and loads every record into the cache.
// On storage failure it returns a StorageError and switches the store to
// degraded, memory-only operation: callers should log the error and keep
// going rather than crash.
func (s *RecordStore) Initialize(ctx context.Context) error {
	if s.repo == nil {
		s.enterDegraded()
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageInit,
			"no local database configured",
			domainerror.ErrStorageInit,
		)
	}

	if err := s.repo.Migrate(ctx); err != nil {
		s.enterDegraded()
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageInit,
			"failed to open local database",
			err,
		)
	}

	loaded := make(map[entity.Collection][]entity.Record)
	for _, collection := range entity.Collections() {
		records, err := s.repo.LoadAll(ctx, collection)
		if err != nil {
			s.enterDegraded()
			return domainerror.NewStorageError(
				domainerror.ErrCodeStorageInit,
				"failed to load collection "+string(collection),
				err,
			)
		}
		loaded[collection] = dedupeByID(records)
	}

	s.mu.Lock()
	s.cache = loaded
	s.degraded = false
	s.mu.Unlock()

	return nil
}

func (s *RecordStore) enterDegraded() {
	s.mu.Lock()
	s.degraded = true
	s.mu.Unlock()
}

// Degraded reports whether the store is running memory-only after a
// failed Initialize.
func (s *RecordStore) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// dedupeByID drops records whose id was already seen, keeping the first
// occurrence. Rows merged from multiple sources may collide on id.
func dedupeByID(records []entity.Record) []entity.Record {
	seen := make(map[string]struct{}, len(records))
	out := records[:0]
	for _, r := range records {
		if _, dup := seen[r.RecordID()]; dup {
			continue
		}
		seen[r.RecordID()] = struct{}{}
		out = append(out, r)
	}
	return out
}

// GetAll returns a shallow copy of the cached records for the collection.
// Callers never receive the live slice.
func (s *RecordStore) GetAll(collection entity.Collection) []entity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cached := s.cache[collection]
	out := make([]entity.Record, len(cached))
	copy(out, cached)
	return out
}

// Snapshot returns a copy of the full cache, keyed by collection.
func (s *RecordStore) Snapshot() map[entity.Collection][]entity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[entity.Collection][]entity.Record, len(s.cache))
	for collection, records := range s.cache {
		copied := make([]entity.Record, len(records))
		copy(copied, records)
		snapshot[collection] = copied
	}
	return snapshot
}

// Add persists the record, appends it to the cache and synchronously
// emits "<collection>Added" followed by "dataUpdated". On persistence
// failure the cache is left untouched and a StorageError is returned.
func (s *RecordStore) Add(ctx context.Context, record entity.Record) error {
	collection := record.RecordCollection()
	if !collection.Valid() {
		return domainerror.NewStorageError(
			domainerror.ErrCodeUnknownCollection,
			"unknown collection "+string(collection),
			domainerror.ErrUnknownCollection,
		)
	}

	s.mu.Lock()
	if s.indexOf(collection, record.RecordID()) >= 0 {
		s.mu.Unlock()
		return domainerror.NewStorageError(
			domainerror.ErrCodeDuplicateRecordID,
			"record id already exists in "+string(collection),
			domainerror.ErrDuplicateRecordID,
		)
	}

	// Durable write completes before the cache or any observer sees the
	// record.
	if !s.degraded {
		if err := s.repo.Save(ctx, record); err != nil {
			s.mu.Unlock()
			return domainerror.NewStorageError(
				domainerror.ErrCodeRecordWriteFailed,
				"failed to persist record to "+string(collection),
				err,
			)
		}
	}

	s.cache[collection] = append(s.cache[collection], record)
	s.mu.Unlock()

	s.touchSnapshot(ctx)
	s.emit(ctx, collection.AddedEvent(), record)
	s.emit(ctx, EventDataUpdated, s.Snapshot())
	return nil
}

// Update replaces the stored record with the same id and emits
// "<collection>Updated" plus "dataUpdated".
func (s *RecordStore) Update(ctx context.Context, record entity.Record) error {
	collection := record.RecordCollection()

	s.mu.Lock()
	idx := s.indexOf(collection, record.RecordID())
	if idx < 0 {
		s.mu.Unlock()
		return domainerror.NewStorageError(
			domainerror.ErrCodeRecordNotFound,
			"record not found in "+string(collection),
			domainerror.ErrRecordNotFound,
		)
	}

	if !s.degraded {
		if err := s.repo.Update(ctx, record); err != nil {
			s.mu.Unlock()
			return domainerror.NewStorageError(
				domainerror.ErrCodeRecordWriteFailed,
				"failed to update record in "+string(collection),
				err,
			)
		}
	}

	s.cache[collection][idx] = record
	s.mu.Unlock()

	s.touchSnapshot(ctx)
	s.emit(ctx, collection.UpdatedEvent(), record)
	s.emit(ctx, EventDataUpdated, s.Snapshot())
	return nil
}

// Delete removes the record with the given id and emits
// "<collection>Deleted" plus "dataUpdated".
func (s *RecordStore) Delete(ctx context.Context, collection entity.Collection, id string) error {
	s.mu.Lock()
	idx := s.indexOf(collection, id)
	if idx < 0 {
		s.mu.Unlock()
		return domainerror.NewStorageError(
			domainerror.ErrCodeRecordNotFound,
			"record not found in "+string(collection),
			domainerror.ErrRecordNotFound,
		)
	}
	removed := s.cache[collection][idx]

	if !s.degraded {
		if err := s.repo.Delete(ctx, collection, id); err != nil {
			s.mu.Unlock()
			return domainerror.NewStorageError(
				domainerror.ErrCodeRecordWriteFailed,
				"failed to delete record from "+string(collection),
				err,
			)
		}
	}

	cached := s.cache[collection]
	s.cache[collection] = append(cached[:idx:idx], cached[idx+1:]...)
	s.mu.Unlock()

	s.touchSnapshot(ctx)
	s.emit(ctx, collection.DeletedEvent(), removed)
	s.emit(ctx, EventDataUpdated, s.Snapshot())
	return nil
}

// indexOf must be called with the mutex held.
func (s *RecordStore) indexOf(collection entity.Collection, id string) int {
	for i, r := range s.cache[collection] {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// FinancialSummary derives aggregate totals from the current cache.
// Currency strings are parsed leniently; unparseable values contribute
// zero.
func (s *RecordStore) FinancialSummary() entity.FinancialSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary entity.FinancialSummary
	for _, r := range s.cache[entity.CollectionAssets] {
		if a, ok := r.(*entity.Asset); ok {
			summary.TotalAssets = summary.TotalAssets.Add(valueobject.ParseAmount(a.Value))
		}
	}
	for _, r := range s.cache[entity.CollectionLiabilities] {
		if l, ok := r.(*entity.Liability); ok {
			summary.TotalLiabilities = summary.TotalLiabilities.Add(valueobject.ParseAmount(l.Amount))
		}
	}
	for _, r := range s.cache[entity.CollectionIncome] {
		if in, ok := r.(*entity.Income); ok {
			summary.TotalIncome = summary.TotalIncome.Add(valueobject.ParseAmount(in.Amount))
		}
	}
	for _, r := range s.cache[entity.CollectionExpenses] {
		if e, ok := r.(*entity.Expense); ok {
			summary.TotalExpenses = summary.TotalExpenses.Add(valueobject.ParseAmount(e.Spent))
		}
	}

	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)
	summary.CashFlow = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// Subscribe registers a callback for the named event and returns an
// unsubscribe function. Emission is synchronous and ordered; one
// observer's panic does not break the others.
func (s *RecordStore) Subscribe(event string, fn EventCallback) func() {
	return s.bus.subscribe(event, fn)
}

// SnapshotTime returns when the cache last changed, if a meta repository
// is configured.
func (s *RecordStore) SnapshotTime(ctx context.Context) (time.Time, error) {
	if s.meta == nil {
		return time.Time{}, nil
	}
	return s.meta.SnapshotTime(ctx)
}

func (s *RecordStore) touchSnapshot(ctx context.Context) {
	if s.meta == nil || s.Degraded() {
		return
	}
	if err := s.meta.SetSnapshotTime(ctx, time.Now().UTC()); err != nil {
		slog.Warn("Failed to record cache snapshot time", "error", err)
	}
}

func (s *RecordStore) emit(ctx context.Context, event string, payload any) {
	s.bus.emit(event, payload)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event, payload); err != nil {
			slog.Warn("Failed to publish event to external observers",
				"event", event,
				"error", err,
			)
		}
	}
}
