package entity

import "github.com/google/uuid"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a generic ledger entry synchronized with the
// dashboard's transactions endpoint.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      string          `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// NewTransaction creates a Transaction with a fresh client-generated id.
func NewTransaction(description, amount string, transactionType TransactionType, category, date string) *Transaction {
	return &Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Date:        date,
	}
}

// RecordID implements Record.
func (t *Transaction) RecordID() string { return t.ID }

// RecordCollection implements Record.
func (t *Transaction) RecordCollection() Collection { return CollectionTransactions }
