package db

import "gorm.io/gorm"

// SiteSetting stores editable site-level key/value pairs.
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name explicit.
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySiteName is the displayed site name.
	SettingKeySiteName = "site_name"
	// SettingKeyAboutMarkdown is the photographer bio shown on the about page.
	SettingKeyAboutMarkdown = "about_markdown"
	// SettingKeyContactEmail is the address shown alongside the contact form.
	SettingKeyContactEmail = "contact_email"
)
