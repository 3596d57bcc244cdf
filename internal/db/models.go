package db

import (
	"time"

	"gorm.io/gorm"
)

// Entry is one key/value pair of the storefront's persistent storage.
// Values are opaque strings; callers JSON-encode structured values.
type Entry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Entry model
func (Entry) TableName() string {
	return "storage_entries"
}

// BeforeSave hook to stamp the update time
func (e *Entry) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}
