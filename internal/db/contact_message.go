package db

import "gorm.io/gorm"

// ContactMessage is an inquiry from the public contact form.
// Rows are append-only; only IsRead is ever mutated.
type ContactMessage struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	ProjectType string
	Message     string `gorm:"type:text;not null"`
	IsRead      bool   `gorm:"default:false"`
}
