package classifier

import (
	"regexp"
	"strings"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// Daily expense categories reuse the budget vocabulary with a few
// purchase-specific additions tested first.
var dailyExpenseCategoryRules = append([]typeRule{
	{regexp.MustCompile(`\b(?:coffee|tea|snacks?|lunch|dinner|breakfast)\b`), "Dining"},
	{regexp.MustCompile(`\b(?:auto|rickshaw|metro|bus|train) (?:fare|ticket)\b`), "Transportation"},
}, budgetCategoryRules...)

var dailyExpenseTitleRules = []titleRule{
	{regexp.MustCompile(`(?:spent|paid)\s+(?:[₹$]?\d+(?:\.\d+)?\s+)?(?:rupees\s+|dollars\s+)?(?:on|for)\s+([a-z ]+?)(?:\s+(?:today|yesterday|tomorrow|at|in)\b|$)`)},
	{regexp.MustCompile(`bought\s+(?:a\s+|an\s+|some\s+)?([a-z ]+?)(?:\s+(?:for|at|today|yesterday)\b|$)`)},
	{regexp.MustCompile(`(?:on|for)\s+([a-z ]+?)\s+(?:i\s+)?(?:spent|paid)\b`)},
}

var dailyExpenseAmountRe = regexp.MustCompile(`(?:spent|paid|cost|costs|for)\s+(?:about\s+|around\s+)?(?:rs\.?\s*|inr\s*|₹\s*|\$\s*)?(\d+(?:\.\d+)?)`)

// classifyDailyExpense keeps the raw utterance in the notes field so the
// user can audit what the entry was derived from.
func (c *RuleBased) classifyDailyExpense(raw, text string) entity.Record {
	amount, ok := contextAmount(dailyExpenseAmountRe, text)
	if !ok {
		amount, ok = largest(findAmounts(text))
	}
	if !ok {
		return nil
	}

	category := matchType(dailyExpenseCategoryRules, text)

	title := extractTitle(dailyExpenseTitleRules, nil, text)
	if title == "" {
		if category != "Other" {
			title = category
		} else {
			title = "Expense"
		}
	}

	return entity.NewDailyExpense(
		titleCase(title),
		c.formatter.Currency(amount),
		category,
		c.relativeDate(text),
		strings.TrimSpace(raw),
	)
}
