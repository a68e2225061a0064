// Package capture contains the voice/text capture use case.
package capture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/application/classifier"
	"github.com/finance-dashboard/agent/internal/application/store"
	syncmgr "github.com/finance-dashboard/agent/internal/application/sync"
	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// CaptureUtteranceInput represents a transcript to turn into a record.
type CaptureUtteranceInput struct {
	Text string
	Kind entity.Kind
}

// CaptureUtteranceOutput reports what happened to the utterance. When
// Matched is false the caller should fall back to manual entry.
type CaptureUtteranceOutput struct {
	Matched bool
	Record  entity.Record
	Source  string // "rules" or "ai"
	Queued  bool   // true when the record awaits upload
}

// CaptureUtteranceUseCase classifies an utterance, persists the result
// locally and arranges upstream delivery: direct when online, queued
// when offline or when the direct push fails.
type CaptureUtteranceUseCase struct {
	rules   *classifier.RuleBased
	ai      adapter.AIClassifier
	records *store.RecordStore
	sync    *syncmgr.Manager
	monitor adapter.ConnectivityMonitor
}

// NewCaptureUtteranceUseCase creates a new CaptureUtteranceUseCase
// instance. ai may be nil when no online fallback is configured.
func NewCaptureUtteranceUseCase(
	rules *classifier.RuleBased,
	ai adapter.AIClassifier,
	records *store.RecordStore,
	sync *syncmgr.Manager,
	monitor adapter.ConnectivityMonitor,
) *CaptureUtteranceUseCase {
	return &CaptureUtteranceUseCase{
		rules:   rules,
		ai:      ai,
		records: records,
		sync:    sync,
		monitor: monitor,
	}
}

// Execute performs the capture flow. A classification miss is a normal
// outcome, not an error.
func (uc *CaptureUtteranceUseCase) Execute(ctx context.Context, input CaptureUtteranceInput) (*CaptureUtteranceOutput, error) {
	record := uc.rules.Classify(input.Text, input.Kind)
	source := "rules"

	if record == nil && uc.ai != nil && uc.ai.IsAvailable() && uc.monitor.Online() {
		aiRecord, err := uc.ai.Classify(ctx, input.Text, input.Kind)
		if err != nil {
			slog.Warn("Online classifier failed, treating as miss", "error", err)
		} else if aiRecord != nil {
			record = aiRecord
			source = "ai"
		}
	}

	if record == nil {
		return &CaptureUtteranceOutput{Matched: false}, nil
	}

	if err := uc.records.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store captured record: %w", err)
	}

	queued := false
	if uc.monitor.Online() {
		if err := uc.sync.Deliver(ctx, record); err != nil {
			slog.Warn("Direct delivery failed, queuing record",
				"id", record.RecordID(),
				"error", err,
			)
			queued = uc.enqueue(ctx, record)
		}
	} else {
		queued = uc.enqueue(ctx, record)
	}

	return &CaptureUtteranceOutput{
		Matched: true,
		Record:  record,
		Source:  source,
		Queued:  queued,
	}, nil
}

func (uc *CaptureUtteranceUseCase) enqueue(ctx context.Context, record entity.Record) bool {
	if err := uc.sync.Enqueue(ctx, record); err != nil {
		slog.Error("Failed to queue record for sync",
			"id", record.RecordID(),
			"error", err,
		)
		return false
	}
	return true
}
