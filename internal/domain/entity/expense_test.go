package entity

import (
	"testing"

	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

func TestExpenseRecompute(t *testing.T) {
	tests := []struct {
		name       string
		budgeted   string
		spent      string
		percentage int
		status     ExpenseStatus
	}{
		{"well under budget", "₹100", "₹60", 60, ExpenseStatusNormal},
		{"just below warning", "₹100", "₹89", 89, ExpenseStatusNormal},
		{"warning threshold", "₹100", "₹90", 90, ExpenseStatusWarning},
		{"top of warning band", "₹100", "₹99", 99, ExpenseStatusWarning},
		{"exactly at budget", "₹100", "₹100", 100, ExpenseStatusDanger},
		{"overspent clamps display to 100", "₹100", "₹150", 100, ExpenseStatusDanger},
		{"zero budget never divides", "₹0", "₹50", 0, ExpenseStatusNormal},
		{"malformed spent counts as zero", "₹100", "garbage", 0, ExpenseStatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpense("Groceries", tt.budgeted, tt.spent, valueobject.ParseAmount)
			if e.Percentage != tt.percentage {
				t.Errorf("Percentage = %d, want %d", e.Percentage, tt.percentage)
			}
			if e.Status != tt.status {
				t.Errorf("Status = %q, want %q", e.Status, tt.status)
			}
		})
	}
}

func TestExpenseRecomputeAfterEdit(t *testing.T) {
	e := NewExpense("Dining", "₹1,000", "₹500", valueobject.ParseAmount)
	if e.Status != ExpenseStatusNormal {
		t.Fatalf("initial status = %q, want normal", e.Status)
	}

	e.Spent = "₹1,200"
	e.Recompute(valueobject.ParseAmount)

	if e.Status != ExpenseStatusDanger {
		t.Errorf("Status = %q, want danger after overspend", e.Status)
	}
	if e.Percentage != 100 {
		t.Errorf("Percentage = %d, want clamped 100", e.Percentage)
	}
}

func TestStatusForPercentageUsesUnclampedValue(t *testing.T) {
	if got := StatusForPercentage(120); got != ExpenseStatusDanger {
		t.Errorf("StatusForPercentage(120) = %q, want danger", got)
	}
	if got := StatusForPercentage(89); got != ExpenseStatusNormal {
		t.Errorf("StatusForPercentage(89) = %q, want normal", got)
	}
}
