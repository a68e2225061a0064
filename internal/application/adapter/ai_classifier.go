package adapter

import (
	"context"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// AIClassifier is an optional online fallback consulted when the local
// rule-based classifier finds no match. A nil record with a nil error
// means the service also found no match.
type AIClassifier interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Classify extracts a structured record from a free-form utterance.
	Classify(ctx context.Context, text string, kind entity.Kind) (entity.Record, error)
}
