package model

import (
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// DailyExpenseModel represents the daily expenses table in the local
// database.
type DailyExpenseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Amount    string    `gorm:"type:varchar(40);not null"`
	Category  string    `gorm:"type:varchar(40)"`
	Date      string    `gorm:"type:varchar(20)"`
	Notes     string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DailyExpenseModel.
func (DailyExpenseModel) TableName() string {
	return "daily_expenses"
}

// ToEntity converts a DailyExpenseModel to a domain DailyExpense entity.
func (m *DailyExpenseModel) ToEntity() *entity.DailyExpense {
	return &entity.DailyExpense{
		ID:       m.ID,
		Title:    m.Title,
		Amount:   m.Amount,
		Category: m.Category,
		Date:     m.Date,
		Notes:    m.Notes,
	}
}

// DailyExpenseFromEntity creates a DailyExpenseModel from a domain
// DailyExpense entity.
func DailyExpenseFromEntity(expense *entity.DailyExpense) *DailyExpenseModel {
	return &DailyExpenseModel{
		ID:       expense.ID,
		Title:    expense.Title,
		Amount:   expense.Amount,
		Category: expense.Category,
		Date:     expense.Date,
		Notes:    expense.Notes,
	}
}
