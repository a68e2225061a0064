package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus is derived from how much of a budget line has been spent.
type ExpenseStatus string

const (
	ExpenseStatusNormal  ExpenseStatus = "normal"
	ExpenseStatusWarning ExpenseStatus = "warning"
	ExpenseStatusDanger  ExpenseStatus = "danger"
)

// Expense represents a single budget line: an amount budgeted for a
// category and the amount spent against it so far.
type Expense struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Budgeted string `json:"budgeted"`
	Spent    string `json:"spent"`

	// Percentage is always recomputed from Spent/Budgeted, clamped to
	// [0,100] for display. Status thresholds use the unclamped value.
	Percentage int           `json:"percentage"`
	Status     ExpenseStatus `json:"status"`
}

// NewExpense creates an Expense with a fresh client-generated id and
// derives Percentage and Status from the given amounts.
func NewExpense(title, budgeted, spent string, parse func(string) decimal.Decimal) *Expense {
	e := &Expense{
		ID:       uuid.NewString(),
		Title:    title,
		Budgeted: budgeted,
		Spent:    spent,
	}
	e.Recompute(parse)
	return e
}

// Recompute refreshes the derived Percentage and Status fields from the
// Budgeted and Spent display strings. It must be called after either
// amount changes so the derived fields never drift.
func (e *Expense) Recompute(parse func(string) decimal.Decimal) {
	budgeted := parse(e.Budgeted)
	spent := parse(e.Spent)

	raw := 0
	if budgeted.IsPositive() {
		raw = int(spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}

	e.Status = StatusForPercentage(raw)

	// Display percentage is clamped, threshold checks above are not.
	switch {
	case raw < 0:
		e.Percentage = 0
	case raw > 100:
		e.Percentage = 100
	default:
		e.Percentage = raw
	}
}

// StatusForPercentage maps an unclamped spend percentage onto a status:
// below 90 is normal, 90-99 warning, 100 and above danger.
func StatusForPercentage(pct int) ExpenseStatus {
	switch {
	case pct >= 100:
		return ExpenseStatusDanger
	case pct >= 90:
		return ExpenseStatusWarning
	default:
		return ExpenseStatusNormal
	}
}

// RecordID implements Record.
func (e *Expense) RecordID() string { return e.ID }

// RecordCollection implements Record.
func (e *Expense) RecordCollection() Collection { return CollectionExpenses }
