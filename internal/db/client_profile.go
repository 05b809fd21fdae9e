package db

import (
	"time"

	"gorm.io/gorm"
)

// ClientProfile extends a user identity with the business-side details
// of a photography client. Exactly one profile per user.
type ClientProfile struct {
	gorm.Model
	UserID      uint `gorm:"uniqueIndex;not null"`
	User        User
	Phone       string
	SessionDate *time.Time
	SessionType string
	Notes       string
	IsActive    bool `gorm:"default:true"`

	Galleries []Gallery
}
