package db_models

import (
	"github.com/google/uuid"
)

// Credential keys. Two independent entries per user; values are opaque
// bearer tokens and must never be logged.
const (
	SettingDashScopeAPIKey = "dashscope_api_key"
	SettingBaiduMapAK      = "baidu_map_ak"
)

type Setting struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index:idx_settings_user_key,unique"`
	Key    string    `gorm:"index:idx_settings_user_key,unique"`
	Value  string
}
