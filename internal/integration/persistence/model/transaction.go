package model

import (
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// TransactionModel represents the transactions table in the local
// database.
type TransactionModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Description string    `gorm:"type:varchar(255);not null"`
	Amount      string    `gorm:"type:varchar(40);not null"`
	Type        string    `gorm:"type:varchar(10)"`
	Category    string    `gorm:"type:varchar(40)"`
	Date        string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Category:    m.Category,
		Date:        m.Date,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain
// Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Date:        transaction.Date,
	}
}
