package entity

import "github.com/google/uuid"

// DailyExpense represents a single day-to-day purchase.
type DailyExpense struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

// NewDailyExpense creates a DailyExpense with a fresh client-generated id.
func NewDailyExpense(title, amount, category, date, notes string) *DailyExpense {
	return &DailyExpense{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
		Notes:    notes,
	}
}

// RecordID implements Record.
func (d *DailyExpense) RecordID() string { return d.ID }

// RecordCollection implements Record.
func (d *DailyExpense) RecordCollection() Collection { return CollectionDailyExpenses }
