package db

import "gorm.io/gorm"

// Category groups public photos. Slugs are referenced by portfolio URLs
// and must stay stable once published.
type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	SortOrder   int `gorm:"default:0"`

	Photos []Photo
}
