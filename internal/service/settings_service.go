package service

import (
	"strings"

	"github.com/framelight/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings describes the editable site-level values.
type SiteSettings struct {
	SiteName      string
	AboutMarkdown string
	ContactEmail  string
}

// SettingsService reads and updates site settings.
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a SettingsService instance.
func NewSettingsService(gdb *gorm.DB) *SettingsService {
	return &SettingsService{db: gdb}
}

var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyAboutMarkdown,
	db.SettingKeyContactEmail,
}

// Get reads the settings, returning defaults for unset keys.
func (s *SettingsService) Get() (SiteSettings, error) {
	settings := SiteSettings{SiteName: "Framelight"}

	var rows []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&rows).Error; err != nil {
		return settings, err
	}

	for _, row := range rows {
		value := strings.TrimSpace(row.Value)
		if value == "" {
			continue
		}
		switch row.Key {
		case db.SettingKeySiteName:
			settings.SiteName = value
		case db.SettingKeyAboutMarkdown:
			settings.AboutMarkdown = value
		case db.SettingKeyContactEmail:
			settings.ContactEmail = value
		}
	}
	return settings, nil
}

// Update upserts the given settings.
func (s *SettingsService) Update(settings SiteSettings) error {
	rows := []db.SiteSetting{
		{Key: db.SettingKeySiteName, Value: strings.TrimSpace(settings.SiteName)},
		{Key: db.SettingKeyAboutMarkdown, Value: settings.AboutMarkdown},
		{Key: db.SettingKeyContactEmail, Value: strings.TrimSpace(settings.ContactEmail)},
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
}
