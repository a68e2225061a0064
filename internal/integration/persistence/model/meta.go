package model

// MetaModel is a small key/value table for durable agent state such as
// the cache snapshot timestamp.
type MetaModel struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for the MetaModel.
func (MetaModel) TableName() string {
	return "meta"
}
