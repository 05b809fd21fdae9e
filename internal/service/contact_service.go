package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/framelight/internal/db"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("contact message not found")

var projectTypes = map[string]bool{
	"portrait":   true,
	"event":      true,
	"commercial": true,
	"other":      true,
}

// ContactService persists contact-form inquiries.
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput represents the public contact form fields.
type ContactInput struct {
	Name        string
	Email       string
	ProjectType string
	Message     string
}

// Validate returns per-field error messages for invalid input.
func (s *ContactService) Validate(input ContactInput) map[string]string {
	fieldErrs := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "Name is required."
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		fieldErrs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		fieldErrs["email"] = "Enter a valid email address."
	}

	if strings.TrimSpace(input.Message) == "" {
		fieldErrs["message"] = "Message is required."
	}

	if pt := strings.TrimSpace(input.ProjectType); pt != "" && !projectTypes[pt] {
		fieldErrs["project_type"] = "Select a valid project type."
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// Create validates the input and appends a new unread message. The
// per-field map is non-nil exactly when validation failed, in which
// case nothing is persisted.
func (s *ContactService) Create(input ContactInput) (*db.ContactMessage, map[string]string, error) {
	if fieldErrs := s.Validate(input); fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	msg := db.ContactMessage{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		ProjectType: strings.TrimSpace(input.ProjectType),
		Message:     strings.TrimSpace(input.Message),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, nil, err
	}
	return &msg, nil, nil
}

// List returns all messages, newest first.
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var items []db.ContactMessage
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleRead flips the read flag and returns the new state.
func (s *ContactService) ToggleRead(id uint) (bool, error) {
	var msg db.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMessageNotFound
		}
		return false, err
	}

	msg.IsRead = !msg.IsRead
	if err := s.db.Model(&msg).Update("is_read", msg.IsRead).Error; err != nil {
		return false, err
	}
	return msg.IsRead, nil
}
