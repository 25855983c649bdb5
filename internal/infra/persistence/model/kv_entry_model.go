package model

import "time"

// KVEntryModel is the GORM-specific struct for the 'kv_entries' table.
// Each row holds one serialized collection of the key-value store.
type KVEntryModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
