package models

import "time"

// Preference is one remembered setting, keyed by name.
type Preference struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preference keys in use.
const (
	PreferenceTheme = "theme"
)
