package domain

import "time"

// SettingCategory groups settings by the admin screen that edits them.
type SettingCategory string

const (
	SettingGeneral    SettingCategory = "general"
	SettingSEO        SettingCategory = "seo"
	SettingContact    SettingCategory = "contact"
	SettingSocial     SettingCategory = "social"
	SettingAppearance SettingCategory = "appearance"
)

// ValidSettingCategory reports whether c is a recognised category.
func ValidSettingCategory(c SettingCategory) bool {
	switch c {
	case SettingGeneral, SettingSEO, SettingContact, SettingSocial, SettingAppearance:
		return true
	}
	return false
}

// Setting is a single (category, key) configuration value. The value is
// opaque to the backend; the UI decides how to interpret it.
type Setting struct {
	ID        string          `json:"id"`
	Category  SettingCategory `json:"category"`
	Key       string          `json:"key"`
	Value     string          `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}
