package db

import (
	"time"

	"gorm.io/gorm"
)

// Photo is a single portfolio image. ImagePath and ThumbPath are
// storage keys, resolved to URLs by the storage backend.
type Photo struct {
	gorm.Model
	Title       string `gorm:"not null"`
	ImagePath   string `gorm:"not null"`
	ThumbPath   string
	CategoryID  uint
	Category    Category
	Description string
	Location    string
	DateTaken   *time.Time
	IsFeatured  bool `gorm:"default:false"`
	IsPublic    bool `gorm:"default:true"`
	IsHero      bool `gorm:"default:false"`
	IsAbout     bool `gorm:"default:false"`
}
