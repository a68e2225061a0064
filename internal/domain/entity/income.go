package entity

import "github.com/google/uuid"

// Income represents a recurring or one-off income source.
type Income struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// NewIncome creates an Income with a fresh client-generated id.
func NewIncome(title, amount, description string) *Income {
	return &Income{
		ID:          uuid.NewString(),
		Title:       title,
		Amount:      amount,
		Description: description,
	}
}

// RecordID implements Record.
func (i *Income) RecordID() string { return i.ID }

// RecordCollection implements Record.
func (i *Income) RecordCollection() Collection { return CollectionIncome }
