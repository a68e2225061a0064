package model

import (
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// IncomeModel represents the income table in the local database.
type IncomeModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Title       string    `gorm:"type:varchar(120);not null"`
	Amount      string    `gorm:"type:varchar(40);not null"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		Title:       m.Title,
		Amount:      m.Amount,
		Description: m.Description,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		Title:       income.Title,
		Amount:      income.Amount,
		Description: income.Description,
	}
}
