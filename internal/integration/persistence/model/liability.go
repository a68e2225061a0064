package model

import (
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// LiabilityModel represents the liabilities table in the local database.
type LiabilityModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Amount    string    `gorm:"type:varchar(40);not null"`
	Type      string    `gorm:"type:varchar(40)"`
	Interest  string    `gorm:"type:varchar(20)"`
	Payment   string    `gorm:"type:varchar(40)"`
	DueDate   string    `gorm:"type:varchar(20)"`
	Status    string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the LiabilityModel.
func (LiabilityModel) TableName() string {
	return "liabilities"
}

// ToEntity converts a LiabilityModel to a domain Liability entity.
func (m *LiabilityModel) ToEntity() *entity.Liability {
	return &entity.Liability{
		ID:       m.ID,
		Title:    m.Title,
		Amount:   m.Amount,
		Type:     m.Type,
		Interest: m.Interest,
		Payment:  m.Payment,
		DueDate:  m.DueDate,
		Status:   entity.LiabilityStatus(m.Status),
	}
}

// LiabilityFromEntity creates a LiabilityModel from a domain Liability entity.
func LiabilityFromEntity(liability *entity.Liability) *LiabilityModel {
	return &LiabilityModel{
		ID:       liability.ID,
		Title:    liability.Title,
		Amount:   liability.Amount,
		Type:     liability.Type,
		Interest: liability.Interest,
		Payment:  liability.Payment,
		DueDate:  liability.DueDate,
		Status:   string(liability.Status),
	}
}
