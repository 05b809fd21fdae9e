package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a login identity. Federated accounts use the identity
// provider's subject identifier as the username and carry no password.
type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string
	Email     string
	FirstName string
	LastName  string
	IsStaff   bool
}

// FullName joins the stored name parts for display.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// EnsureStaffUser creates a bcrypt-hashed staff account if the given
// username does not exist yet. Blank credentials are a no-op.
func EnsureStaffUser(username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := DB.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return DB.Create(&User{Username: trimmedUser, Password: string(hashed), IsStaff: true}).Error
	}

	return nil
}
