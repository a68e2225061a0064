// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// AssetModel represents the assets table in the local database.
type AssetModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Value     string    `gorm:"type:varchar(40);not null"`
	Type      string    `gorm:"type:varchar(40)"`
	Date      string    `gorm:"type:varchar(20)"`
	Change    string    `gorm:"type:varchar(20)"`
	Trend     string    `gorm:"type:varchar(8)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	return &entity.Asset{
		ID:     m.ID,
		Title:  m.Title,
		Value:  m.Value,
		Type:   m.Type,
		Date:   m.Date,
		Change: m.Change,
		Trend:  entity.Trend(m.Trend),
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(asset *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:     asset.ID,
		Title:  asset.Title,
		Value:  asset.Value,
		Type:   asset.Type,
		Date:   asset.Date,
		Change: asset.Change,
		Trend:  string(asset.Trend),
	}
}
