package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle.
var DB *gorm.DB

// Init opens the sqlite database and migrates the core models.
// databasePath falls back to framelight.db when empty.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "framelight.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate runs auto-migration for every model on the given handle.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&Category{},
		&Photo{},
		&ClientProfile{},
		&Gallery{},
		&ContactMessage{},
		&SiteSetting{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
