package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jenkinpan/teaform/internal/models"
	"github.com/jenkinpan/teaform/internal/theme"
)

// SetPreference stores or replaces one keyed setting.
func SetPreference(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	pref := models.Preference{Key: key, Value: value}
	return DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&pref).Error
}

// GetPreference reads one keyed setting. Missing keys report ok=false
// without an error.
func GetPreference(key string) (string, bool, error) {
	var pref models.Preference
	err := DB.First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

// SaveThemeMode remembers the scheme for the next run.
func SaveThemeMode(mode theme.Mode) error {
	return SetPreference(models.PreferenceTheme, mode.String())
}

// LoadThemeMode returns the remembered scheme, if any was saved.
func LoadThemeMode() (theme.Mode, bool, error) {
	value, ok, err := GetPreference(models.PreferenceTheme)
	if err != nil || !ok {
		return theme.Dark, false, err
	}

	mode, err := theme.ParseMode(value)
	if err != nil {
		// Unparsable rows count as absent.
		return theme.Dark, false, nil
	}
	return mode, true, nil
}
