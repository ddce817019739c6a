package models

// Setting is a generic key/value row. Currently holds the LLM forwarding
// configuration under the keys LLM_URL and LLM_ENABLED.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// Setting keys used by the admin settings panel and the LLM proxy
const (
	SettingLLMURL     = "LLM_URL"
	SettingLLMEnabled = "LLM_ENABLED"
)

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
