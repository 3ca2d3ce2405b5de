package model

import "time"

// Setting is a free-form key/value row. The value is JSON-encoded text;
// last write wins, no history retained.
type Setting struct {
	Key   string `gorm:"primaryKey;type:text" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`

	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }
