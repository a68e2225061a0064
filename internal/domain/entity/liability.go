package entity

import "github.com/google/uuid"

// LiabilityStatus tracks how close a liability is to its due date.
type LiabilityStatus string

const (
	LiabilityStatusCurrent LiabilityStatus = "current"
	LiabilityStatusWarning LiabilityStatus = "warning"
	LiabilityStatusLate    LiabilityStatus = "late"
)

// Liability represents money the user owes.
type Liability struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   string          `json:"amount"`
	Type     string          `json:"type"`
	Interest string          `json:"interest"`
	Payment  string          `json:"payment"`
	DueDate  string          `json:"dueDate"`
	Status   LiabilityStatus `json:"status"`
}

// NewLiability creates a Liability with a fresh client-generated id.
func NewLiability(title, amount, liabilityType, interest, payment, dueDate string, status LiabilityStatus) *Liability {
	return &Liability{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   amount,
		Type:     liabilityType,
		Interest: interest,
		Payment:  payment,
		DueDate:  dueDate,
		Status:   status,
	}
}

// RecordID implements Record.
func (l *Liability) RecordID() string { return l.ID }

// RecordCollection implements Record.
func (l *Liability) RecordCollection() Collection { return CollectionLiabilities }
