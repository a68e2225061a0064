// Package classifier converts free-form natural-language utterances into
// structured financial records, entirely locally. It is a deterministic,
// rule-ordered cascade, not a statistical model: the same utterance
// always produces the same record.
package classifier

import (
	"strings"
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

// RuleBased is the offline substitute for a server-side NLP call. A nil
// result is a classification miss, never an error: callers fall back to
// manual entry or an online classifier.
type RuleBased struct {
	formatter valueobject.Formatter
	now       func() time.Time
}

// Option customizes a RuleBased classifier.
type Option func(*RuleBased)

// WithClock overrides the time source used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *RuleBased) { c.now = now }
}

// NewRuleBased creates a classifier that formats extracted numbers with
// the given locale formatter.
func NewRuleBased(formatter valueobject.Formatter, opts ...Option) *RuleBased {
	c := &RuleBased{
		formatter: formatter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify extracts a structured record of the given kind from text.
// It returns nil when no primary numeric value can be resolved.
func (c *RuleBased) Classify(text string, kind entity.Kind) entity.Record {
	normalized := normalizeNumbers(normalize(text))
	if normalized == "" {
		return nil
	}

	switch kind {
	case entity.KindAsset:
		return c.classifyAsset(normalized)
	case entity.KindLiability:
		return c.classifyLiability(normalized)
	case entity.KindBudget:
		return c.classifyBudget(normalized)
	case entity.KindDailyExpense:
		return c.classifyDailyExpense(text, normalized)
	}
	return nil
}

// relativeDate resolves the utterance's date: today unless "yesterday"
// or "tomorrow" appears, each shifting by exactly one day.
func (c *RuleBased) relativeDate(text string) string {
	day := c.now()
	switch {
	case strings.Contains(text, "yesterday"):
		day = day.AddDate(0, 0, -1)
	case strings.Contains(text, "tomorrow"):
		day = day.AddDate(0, 0, 1)
	}
	return day.Format("2006-01-02")
}
