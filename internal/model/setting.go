package model

import "time"

// Setting is a persisted configuration entry.
type Setting struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

const (
	SettingBusinessName      = "business_name"
	SettingCurrencySymbol    = "currency_symbol"
	SettingWarehouseLocation = "warehouse_location"
)

// DefaultSettings are seeded at startup when missing. The set of keys is closed.
var DefaultSettings = []Setting{
	{Key: SettingBusinessName, Value: "Mi Negocio"},
	{Key: SettingCurrencySymbol, Value: "€"},
	{Key: SettingWarehouseLocation, Value: "Almacén Principal"},
}

// IsKnownSetting reports whether key is one of DefaultSettings.
func IsKnownSetting(key string) bool {
	for _, s := range DefaultSettings {
		if s.Key == key {
			return true
		}
	}
	return false
}
