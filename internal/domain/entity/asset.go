package entity

import "github.com/google/uuid"

// Trend indicates which direction an asset's value moved recently.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Asset represents something the user owns. Monetary fields hold
// locale-formatted display strings to stay wire-compatible with the
// dashboard API; arithmetic goes through valueobject.ParseAmount.
type Asset struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Value  string `json:"value"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
}

// NewAsset creates an Asset with a fresh client-generated id.
func NewAsset(title, value, assetType, date, change string, trend Trend) *Asset {
	return &Asset{
		ID:     uuid.NewString(),
		Title:  title,
		Value:  value,
		Type:   assetType,
		Date:   date,
		Change: change,
		Trend:  trend,
	}
}

// RecordID implements Record.
func (a *Asset) RecordID() string { return a.ID }

// RecordCollection implements Record.
func (a *Asset) RecordCollection() Collection { return CollectionAssets }
