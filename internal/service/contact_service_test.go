package service

import (
	"errors"
	"testing"

	"github.com/framelight/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func TestContactCreate(t *testing.T) {
	gdb := setupContactTestDB(t)
	svc := NewContactService(gdb)

	msg, fieldErrs, err := svc.Create(ContactInput{
		Name:        "Sam Porter",
		Email:       "sam@example.com",
		ProjectType: "portrait",
		Message:     "Looking for a family session in October.",
	})
	if err != nil || fieldErrs != nil {
		t.Fatalf("create failed: %v / %v", err, fieldErrs)
	}
	if msg.IsRead {
		t.Fatalf("new messages must start unread")
	}

	var stored db.ContactMessage
	if err := gdb.First(&stored, msg.ID).Error; err != nil {
		t.Fatalf("failed to reload message: %v", err)
	}
	if stored.Email != "sam@example.com" {
		t.Fatalf("unexpected email %q", stored.Email)
	}
}

func TestContactValidation(t *testing.T) {
	gdb := setupContactTestDB(t)
	svc := NewContactService(gdb)

	cases := []struct {
		name  string
		input ContactInput
		field string
	}{
		{"missing email", ContactInput{Name: "Sam", Message: "hi"}, "email"},
		{"bad email", ContactInput{Name: "Sam", Email: "not-an-email", Message: "hi"}, "email"},
		{"missing name", ContactInput{Email: "sam@example.com", Message: "hi"}, "name"},
		{"missing message", ContactInput{Name: "Sam", Email: "sam@example.com"}, "message"},
		{"bad project type", ContactInput{Name: "Sam", Email: "sam@example.com", Message: "hi", ProjectType: "weddings"}, "project_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, fieldErrs, err := svc.Create(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg != nil {
				t.Fatalf("invalid input must not create a record")
			}
			if fieldErrs[tc.field] == "" {
				t.Fatalf("expected error on %q, got %v", tc.field, fieldErrs)
			}
		})
	}

	var count int64
	gdb.Model(&db.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no records, got %d", count)
	}
}

func TestContactToggleRead(t *testing.T) {
	gdb := setupContactTestDB(t)
	svc := NewContactService(gdb)

	msg, _, err := svc.Create(ContactInput{Name: "Sam", Email: "sam@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	isRead, err := svc.ToggleRead(msg.ID)
	if err != nil || !isRead {
		t.Fatalf("expected toggled to read, got %v / %v", isRead, err)
	}
	isRead, err = svc.ToggleRead(msg.ID)
	if err != nil || isRead {
		t.Fatalf("expected toggled back to unread, got %v / %v", isRead, err)
	}

	if _, err := svc.ToggleRead(9999); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
