package classifier

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

// Tip is a rule-derived saving suggestion surfaced on the dashboard.
type Tip struct {
	Level    string `json:"level"` // "info" or "warning"
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Category string `json:"category,omitempty"`
}

// Spending-pattern tips need a minimal sample before they say anything.
// Thresholds follow the lenient policy: three records is enough.
const minDailyExpensesForTips = 3

// concentrationThreshold flags a category once it takes this share of
// daily spending.
var concentrationThreshold = decimal.NewFromFloat(0.3)

// interestThreshold flags liabilities above this rate for refinancing.
var interestThreshold = decimal.NewFromInt(10)

// GenerateTips derives savings tips from the current cache snapshot.
// Purely computational: same snapshot, same tips, in the same order.
func (c *RuleBased) GenerateTips(snapshot map[entity.Collection][]entity.Record, summary entity.FinancialSummary) []Tip {
	var tips []Tip

	tips = append(tips, c.spendingPatternTips(snapshot[entity.CollectionDailyExpenses])...)
	tips = append(tips, budgetTips(snapshot[entity.CollectionExpenses])...)
	tips = append(tips, c.liabilityTips(snapshot[entity.CollectionLiabilities])...)

	if summary.CashFlow.IsNegative() {
		tips = append(tips, Tip{
			Level:  "warning",
			Title:  "Spending exceeds income",
			Detail: "Expenses are " + c.formatter.Currency(summary.CashFlow.Neg()) + " above income this period.",
		})
	}

	return tips
}

func (c *RuleBased) spendingPatternTips(records []entity.Record) []Tip {
	if len(records) < minDailyExpensesForTips {
		return nil
	}

	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, r := range records {
		expense, ok := r.(*entity.DailyExpense)
		if !ok {
			continue
		}
		amount := valueobject.ParseAmount(expense.Amount)
		totals[expense.Category] = totals[expense.Category].Add(amount)
		grand = grand.Add(amount)
	}
	if !grand.IsPositive() {
		return nil
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var tips []Tip
	for _, category := range categories {
		share := totals[category].Div(grand)
		if share.GreaterThanOrEqual(concentrationThreshold) && category != "Other" {
			tips = append(tips, Tip{
				Level:    "info",
				Title:    "High spend on " + category,
				Detail:   category + " makes up " + share.Mul(decimal.NewFromInt(100)).Round(0).String() + "% of your daily spending. Small cuts here add up fastest.",
				Category: category,
			})
		}
	}
	return tips
}

func budgetTips(records []entity.Record) []Tip {
	var tips []Tip
	for _, r := range records {
		expense, ok := r.(*entity.Expense)
		if !ok {
			continue
		}
		switch expense.Status {
		case entity.ExpenseStatusDanger:
			tips = append(tips, Tip{
				Level:    "warning",
				Title:    expense.Title + " budget exhausted",
				Detail:   "You have spent " + expense.Spent + " of a " + expense.Budgeted + " budget.",
				Category: expense.Title,
			})
		case entity.ExpenseStatusWarning:
			tips = append(tips, Tip{
				Level:    "info",
				Title:    expense.Title + " budget nearly used",
				Detail:   "Only a small part of the " + expense.Budgeted + " budget remains.",
				Category: expense.Title,
			})
		}
	}
	return tips
}

func (c *RuleBased) liabilityTips(records []entity.Record) []Tip {
	var tips []Tip
	for _, r := range records {
		liability, ok := r.(*entity.Liability)
		if !ok {
			continue
		}
		rate := valueobject.ParseAmount(liability.Interest)
		if rate.GreaterThan(interestThreshold) {
			tips = append(tips, Tip{
				Level:  "info",
				Title:  "High interest on " + liability.Title,
				Detail: liability.Title + " carries " + liability.Interest + " interest. Refinancing could reduce the monthly payment.",
			})
		}
	}
	return tips
}
