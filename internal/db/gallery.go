package db

import "gorm.io/gorm"

// Gallery is a client-owned photo collection, optionally gated by a
// shared password. AccessPassword is stored in clear and compared by
// equality; it is a convenience gate, not a credential.
type Gallery struct {
	gorm.Model
	Name            string `gorm:"not null"`
	Slug            string `gorm:"uniqueIndex;not null"`
	Description     string
	ClientProfileID uint `gorm:"not null"`
	ClientProfile   ClientProfile
	Photos          []Photo `gorm:"many2many:gallery_photos"`
	SelectedPhotos  []Photo `gorm:"many2many:gallery_selected_photos"`
	CoverPhotoID    *uint
	CoverPhoto      *Photo
	IsActive        bool `gorm:"default:true"`

	PasswordProtected bool `gorm:"default:false"`
	AccessPassword    string
}
