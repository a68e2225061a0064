package classifier

import (
	"testing"
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	}
}

func newTestClassifier() *RuleBased {
	return NewRuleBased(valueobject.DefaultFormatter(), WithClock(fixedClock()))
}

func TestClassifyDeterminism(t *testing.T) {
	c := newTestClassifier()
	utterance := "I have stocks worth 50000"

	first := c.Classify(utterance, entity.KindAsset)
	second := c.Classify(utterance, entity.KindAsset)

	a1, ok1 := first.(*entity.Asset)
	a2, ok2 := second.(*entity.Asset)
	if !ok1 || !ok2 {
		t.Fatalf("expected assets, got %T and %T", first, second)
	}
	if a1.Title != a2.Title || a1.Value != a2.Value || a1.Type != a2.Type {
		t.Errorf("same utterance produced different records: %+v vs %+v", a1, a2)
	}
}

func TestClassifyMissReturnsNil(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name string
		text string
		kind entity.Kind
	}{
		{"no number at all", "hello there how are you", entity.KindAsset},
		{"empty utterance", "", entity.KindBudget},
		{"only a percentage", "interest rate is 7 percent", entity.KindLiability},
		{"unknown kind", "stocks worth 50000", entity.Kind("bogus")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text, tt.kind); got != nil {
				t.Errorf("Classify(%q, %s) = %+v, want nil miss", tt.text, tt.kind, got)
			}
		})
	}
}

func TestClassifyAsset(t *testing.T) {
	c := newTestClassifier()

	t.Run("value type and change extracted", func(t *testing.T) {
		record := c.Classify("I have stocks worth 1 lakh, up 5 percent", entity.KindAsset)
		asset, ok := record.(*entity.Asset)
		if !ok {
			t.Fatalf("expected *entity.Asset, got %T", record)
		}

		if asset.Value != "₹1,00,000" {
			t.Errorf("Value = %q, want ₹1,00,000", asset.Value)
		}
		if asset.Type != "Stocks" {
			t.Errorf("Type = %q, want Stocks", asset.Type)
		}
		if asset.Change != "5%" {
			t.Errorf("Change = %q, want 5%%", asset.Change)
		}
		if asset.Trend != entity.TrendUp {
			t.Errorf("Trend = %q, want up", asset.Trend)
		}
	})

	t.Run("down movement flips the trend", func(t *testing.T) {
		record := c.Classify("my mutual fund worth 20000 dropped by 3 percent", entity.KindAsset)
		asset, ok := record.(*entity.Asset)
		if !ok {
			t.Fatalf("expected *entity.Asset, got %T", record)
		}
		if asset.Trend != entity.TrendDown {
			t.Errorf("Trend = %q, want down", asset.Trend)
		}
		if asset.Change != "3%" {
			t.Errorf("Change = %q, want 3%%", asset.Change)
		}
	})

	t.Run("type falls back to Other with default title", func(t *testing.T) {
		record := c.Classify("something worth 500", entity.KindAsset)
		asset, ok := record.(*entity.Asset)
		if !ok {
			t.Fatalf("expected *entity.Asset, got %T", record)
		}
		if asset.Type != "Other" {
			t.Errorf("Type = %q, want Other", asset.Type)
		}
	})
}

func TestClassifyLiability(t *testing.T) {
	c := newTestClassifier()

	t.Run("mortgage wins over the generic loan rule", func(t *testing.T) {
		record := c.Classify("I have a mortgage of ten thousand at 7.5% interest", entity.KindLiability)
		liability, ok := record.(*entity.Liability)
		if !ok {
			t.Fatalf("expected *entity.Liability, got %T", record)
		}

		if liability.Type != "Mortgage" {
			t.Errorf("Type = %q, want Mortgage", liability.Type)
		}
		if liability.Amount != "₹10,000" {
			t.Errorf("Amount = %q, want ₹10,000 (spelled-out number)", liability.Amount)
		}
		if liability.Interest != "7.5%" {
			t.Errorf("Interest = %q, want 7.5%%", liability.Interest)
		}
		if liability.Status != entity.LiabilityStatusCurrent {
			t.Errorf("Status = %q, want current", liability.Status)
		}
	})

	t.Run("generic loan is a personal loan", func(t *testing.T) {
		record := c.Classify("I owe 25000 on a loan", entity.KindLiability)
		liability, ok := record.(*entity.Liability)
		if !ok {
			t.Fatalf("expected *entity.Liability, got %T", record)
		}
		if liability.Type != "Personal Loan" {
			t.Errorf("Type = %q, want Personal Loan", liability.Type)
		}
		if liability.Amount != "₹25,000" {
			t.Errorf("Amount = %q, want ₹25,000", liability.Amount)
		}
	})

	t.Run("smaller amount becomes the payment", func(t *testing.T) {
		record := c.Classify("my car loan balance of 300000 and I pay 8000 monthly", entity.KindLiability)
		liability, ok := record.(*entity.Liability)
		if !ok {
			t.Fatalf("expected *entity.Liability, got %T", record)
		}
		if liability.Type != "Car Loan" {
			t.Errorf("Type = %q, want Car Loan", liability.Type)
		}
		if liability.Amount != "₹3,00,000" {
			t.Errorf("Amount = %q, want ₹3,00,000", liability.Amount)
		}
		if liability.Payment != "₹8,000" {
			t.Errorf("Payment = %q, want ₹8,000", liability.Payment)
		}
	})

	t.Run("overdue wording marks the status late", func(t *testing.T) {
		record := c.Classify("my credit card debt of 15000 is overdue", entity.KindLiability)
		liability, ok := record.(*entity.Liability)
		if !ok {
			t.Fatalf("expected *entity.Liability, got %T", record)
		}
		if liability.Status != entity.LiabilityStatusLate {
			t.Errorf("Status = %q, want late", liability.Status)
		}
		if liability.Type != "Credit Card" {
			t.Errorf("Type = %q, want Credit Card", liability.Type)
		}
	})
}

func TestClassifyBudget(t *testing.T) {
	c := newTestClassifier()

	t.Run("anchored budgeted and spent amounts", func(t *testing.T) {
		record := c.Classify("set a budget of 5000 for groceries and spent 3000", entity.KindBudget)
		expense, ok := record.(*entity.Expense)
		if !ok {
			t.Fatalf("expected *entity.Expense, got %T", record)
		}

		if expense.Budgeted != "₹5,000" {
			t.Errorf("Budgeted = %q, want ₹5,000", expense.Budgeted)
		}
		if expense.Spent != "₹3,000" {
			t.Errorf("Spent = %q, want ₹3,000", expense.Spent)
		}
		if expense.Percentage != 60 {
			t.Errorf("Percentage = %d, want 60", expense.Percentage)
		}
		if expense.Status != entity.ExpenseStatusNormal {
			t.Errorf("Status = %q, want normal", expense.Status)
		}
		if expense.Title != "Groceries" {
			t.Errorf("Title = %q, want Groceries", expense.Title)
		}
	})

	t.Run("larger number is the budget when anchors fail", func(t *testing.T) {
		record := c.Classify("dining 2000 out of 8000 this month", entity.KindBudget)
		expense, ok := record.(*entity.Expense)
		if !ok {
			t.Fatalf("expected *entity.Expense, got %T", record)
		}
		if expense.Budgeted != "₹8,000" {
			t.Errorf("Budgeted = %q, want ₹8,000 (larger number)", expense.Budgeted)
		}
		if expense.Spent != "₹2,000" {
			t.Errorf("Spent = %q, want ₹2,000 (smaller number)", expense.Spent)
		}
		if expense.Percentage != 25 {
			t.Errorf("Percentage = %d, want 25", expense.Percentage)
		}
	})

	t.Run("spelled numbers normalize before extraction", func(t *testing.T) {
		record := c.Classify("budget of five thousand for entertainment, spent twenty-five hundred", entity.KindBudget)
		expense, ok := record.(*entity.Expense)
		if !ok {
			t.Fatalf("expected *entity.Expense, got %T", record)
		}
		if expense.Budgeted != "₹5,000" {
			t.Errorf("Budgeted = %q, want ₹5,000", expense.Budgeted)
		}
		if expense.Spent != "₹2,500" {
			t.Errorf("Spent = %q, want ₹2,500", expense.Spent)
		}
		if expense.Percentage != 50 {
			t.Errorf("Percentage = %d, want 50", expense.Percentage)
		}
	})
}

func TestClassifyDailyExpense(t *testing.T) {
	c := newTestClassifier()

	t.Run("amount title category and relative date", func(t *testing.T) {
		raw := "spent 200 on coffee yesterday"
		record := c.Classify(raw, entity.KindDailyExpense)
		expense, ok := record.(*entity.DailyExpense)
		if !ok {
			t.Fatalf("expected *entity.DailyExpense, got %T", record)
		}

		if expense.Amount != "₹200" {
			t.Errorf("Amount = %q, want ₹200", expense.Amount)
		}
		if expense.Title != "Coffee" {
			t.Errorf("Title = %q, want Coffee", expense.Title)
		}
		if expense.Category != "Dining" {
			t.Errorf("Category = %q, want Dining", expense.Category)
		}
		if expense.Date != "2026-08-28" {
			t.Errorf("Date = %q, want 2026-08-28 (yesterday)", expense.Date)
		}
		if expense.Notes != raw {
			t.Errorf("Notes = %q, want the raw utterance", expense.Notes)
		}
	})

	t.Run("transit fare category", func(t *testing.T) {
		record := c.Classify("paid 150 for auto fare", entity.KindDailyExpense)
		expense, ok := record.(*entity.DailyExpense)
		if !ok {
			t.Fatalf("expected *entity.DailyExpense, got %T", record)
		}
		if expense.Category != "Transportation" {
			t.Errorf("Category = %q, want Transportation", expense.Category)
		}
	})
}

func TestRelativeDate(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		text     string
		expected string
	}{
		{"spent 100 on lunch", "2026-08-29"},
		{"spent 100 on lunch yesterday", "2026-08-28"},
		{"bill of 100 due tomorrow", "2026-08-30"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := c.relativeDate(tt.text); got != tt.expected {
				t.Errorf("relativeDate(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}
