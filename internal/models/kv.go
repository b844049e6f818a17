package models

import "time"

// KeyValue is a single row of the gorm-backed key-value store.
type KeyValue struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName pins the table name so postgres and sqlite agree.
func (KeyValue) TableName() string {
	return "key_values"
}
