package model

import (
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

// ExpenseModel represents the budget expenses table in the local
// database. Percentage and status are not stored: they are derived from
// spent/budgeted on read so they can never drift.
type ExpenseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Budgeted  string    `gorm:"type:varchar(40);not null"`
	Spent     string    `gorm:"type:varchar(40);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity,
// recomputing the derived fields.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	expense := &entity.Expense{
		ID:       m.ID,
		Title:    m.Title,
		Budgeted: m.Budgeted,
		Spent:    m.Spent,
	}
	expense.Recompute(valueobject.ParseAmount)
	return expense
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:       expense.ID,
		Title:    expense.Title,
		Budgeted: expense.Budgeted,
		Spent:    expense.Spent,
	}
}
