// Package sync guarantees that writes made while offline are not lost
// and are eventually delivered once connectivity returns.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
)

// DrainResult aggregates one drain pass. Failed items stay queued for the
// next cycle.
type DrainResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// Config holds tunables for the sync manager.
type Config struct {
	// PollInterval is how often the worker checks for pending items
	// while online, catching missed connectivity events.
	PollInterval time.Duration

	// ItemTimeout bounds a single delivery attempt so one hung request
	// cannot block the next drain indefinitely.
	ItemTimeout time.Duration

	// Notify, when set, receives the result of every non-empty drain so
	// the host can surface a user-facing notification.
	Notify func(result DrainResult)
}

// DefaultConfig returns the default sync configuration.
func DefaultConfig() Config {
	return Config{
		PollInterval: 60 * time.Second,
		ItemTimeout:  10 * time.Second,
	}
}

// Manager buffers records created while offline in a durable queue and
// replays them against the dashboard API, removing an item only on
// confirmed success (at-least-once delivery).
type Manager struct {
	queue   adapter.SyncQueueRepository
	api     adapter.RemoteAPI
	monitor adapter.ConnectivityMonitor
	cfg     Config

	draining atomic.Bool
}

// NewManager creates a sync manager. Zero config fields fall back to
// DefaultConfig values.
func NewManager(
	queue adapter.SyncQueueRepository,
	api adapter.RemoteAPI,
	monitor adapter.ConnectivityMonitor,
	cfg Config,
) *Manager {
	def := DefaultConfig()
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = def.ItemTimeout
	}

	return &Manager{
		queue:   queue,
		api:     api,
		monitor: monitor,
		cfg:     cfg,
	}
}

// Enqueue durably appends the record to the queue. The write is
// synchronous so the queue survives an agent restart.
func (m *Manager) Enqueue(ctx context.Context, record entity.Record) error {
	item, err := entity.NewSyncItem(record, time.Now().UTC())
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodeQueueWrite,
			"failed to encode record for queuing",
			err,
		)
	}

	if err := m.queue.Append(ctx, item); err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodeQueueWrite,
			"failed to persist sync item",
			err,
		)
	}

	slog.Info("Record queued for sync",
		"id", item.ID,
		"collection", item.Type,
	)
	return nil
}

// HasPending reports whether any items await delivery.
func (m *Manager) HasPending(ctx context.Context) bool {
	count, err := m.queue.Count(ctx)
	if err != nil {
		slog.Warn("Failed to count pending sync items", "error", err)
		return false
	}
	return count > 0
}

// Deliver attempts an immediate push of the record, bypassing the queue.
// Callers fall back to Enqueue when it fails.
func (m *Manager) Deliver(ctx context.Context, record entity.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodeDelivery,
			"failed to encode record",
			err,
		)
	}

	pushCtx, cancel := context.WithTimeout(ctx, m.cfg.ItemTimeout)
	defer cancel()
	return m.api.Push(pushCtx, record.RecordCollection(), payload)
}

// Drain replays every queued item in FIFO order. Each item is processed
// independently: a failure leaves that item queued and moves on, never
// aborting the rest. A drain already in progress returns
// ErrDrainInProgress and touches nothing.
func (m *Manager) Drain(ctx context.Context) (DrainResult, error) {
	if !m.draining.CompareAndSwap(false, true) {
		return DrainResult{}, domainerror.ErrDrainInProgress
	}
	defer m.draining.Store(false)

	items, err := m.queue.List(ctx)
	if err != nil {
		return DrainResult{}, domainerror.NewSyncError(
			domainerror.ErrCodeQueueWrite,
			"failed to read sync queue",
			err,
		)
	}

	var result DrainResult
	for _, item := range items {
		if err := m.deliverItem(ctx, item); err != nil {
			// Item stays queued for the next cycle.
			result.Failed++
			slog.Warn("Sync delivery failed, item retained",
				"id", item.ID,
				"collection", item.Type,
				"error", err,
			)
			continue
		}

		if err := m.queue.Remove(ctx, item.ID); err != nil {
			// The POST succeeded but the dequeue did not; the item will
			// be replayed, which the server tolerates by id.
			result.Failed++
			slog.Error("Failed to remove delivered sync item",
				"id", item.ID,
				"error", err,
			)
			continue
		}
		result.Success++
	}

	if result.Success > 0 || result.Failed > 0 {
		slog.Info("Sync drain finished",
			"success", result.Success,
			"failed", result.Failed,
		)
	}
	return result, nil
}

func (m *Manager) deliverItem(ctx context.Context, item *entity.SyncItem) error {
	pushCtx, cancel := context.WithTimeout(ctx, m.cfg.ItemTimeout)
	defer cancel()
	return m.api.Push(pushCtx, item.Type, item.Data)
}

// Start runs the sync worker until the context is cancelled: it drains on
// every offline-to-online transition and on the poll interval while
// online, in case the transition event was missed or fired before the
// server was actually reachable.
func (m *Manager) Start(ctx context.Context) {
	slog.Info("Sync worker started", "poll_interval", m.cfg.PollInterval)

	transitions := make(chan bool, 8)
	unsubscribe := m.monitor.Subscribe(func(online bool) {
		select {
		case transitions <- online:
		default:
			// A pending transition already triggers a drain.
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	// Catch anything left over from the previous run.
	if m.monitor.Online() && m.HasPending(ctx) {
		m.drainAndNotify(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sync worker shutting down")
			return
		case online := <-transitions:
			if online && m.HasPending(ctx) {
				m.drainAndNotify(ctx)
			}
		case <-ticker.C:
			if m.monitor.Online() && m.HasPending(ctx) {
				m.drainAndNotify(ctx)
			}
		}
	}
}

func (m *Manager) drainAndNotify(ctx context.Context) {
	result, err := m.Drain(ctx)
	if err != nil {
		if !errors.Is(err, domainerror.ErrDrainInProgress) {
			slog.Warn("Sync drain failed", "error", err)
		}
		return
	}

	if m.cfg.Notify != nil && (result.Success > 0 || result.Failed > 0) {
		m.cfg.Notify(result)
	}
}
