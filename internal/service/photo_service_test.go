package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/framelight/internal/db"
	"github.com/framelight/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPhotoTest(t *testing.T) (*gorm.DB, *storage.Local) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb, storage.NewLocal(t.TempDir(), "/media")
}

func seedCategories(t *testing.T, gdb *gorm.DB) (db.Category, db.Category) {
	t.Helper()

	landscapes := db.Category{Name: "Landscapes", Slug: "landscapes"}
	portraits := db.Category{Name: "Portraits", Slug: "portraits"}
	for _, c := range []*db.Category{&landscapes, &portraits} {
		if err := gdb.Create(c).Error; err != nil {
			t.Fatalf("failed to seed category: %v", err)
		}
	}
	return landscapes, portraits
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFilterPublic(t *testing.T) {
	gdb, store := setupPhotoTest(t)
	landscapes, portraits := seedCategories(t, gdb)

	photos := []db.Photo{
		{Title: "Fjord", ImagePath: "photos/fjord.jpg", CategoryID: landscapes.ID, IsPublic: true},
		{Title: "Dunes", ImagePath: "photos/dunes.jpg", CategoryID: landscapes.ID, IsPublic: true},
		{Title: "Anna", ImagePath: "photos/anna.jpg", CategoryID: portraits.ID, IsPublic: true},
		{Title: "Private", ImagePath: "photos/private.jpg", CategoryID: portraits.ID, IsPublic: false},
	}
	for i := range photos {
		if err := gdb.Create(&photos[i]).Error; err != nil {
			t.Fatalf("failed to seed photo: %v", err)
		}
	}

	svc := NewPhotoService(gdb, store)

	all, err := svc.FilterPublic("")
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 public photos, got %d", len(all))
	}
	for _, view := range all {
		if view.Title == "Private" {
			t.Fatalf("non-public photo leaked into the projection")
		}
	}

	landscapesOnly, err := svc.FilterPublic("landscapes")
	if err != nil {
		t.Fatalf("category filter failed: %v", err)
	}
	if len(landscapesOnly) != 2 {
		t.Fatalf("expected 2 landscape photos, got %d", len(landscapesOnly))
	}
	for _, view := range landscapesOnly {
		if view.Category != "landscapes" {
			t.Fatalf("unexpected category %q", view.Category)
		}
	}

	// "all" behaves like no filter.
	if views, err := svc.FilterPublic("all"); err != nil || len(views) != 3 {
		t.Fatalf("expected 3 photos for 'all', got %d (%v)", len(views), err)
	}

	if _, err := svc.FilterPublic("no-such-category"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected category not found, got %v", err)
	}
}

func TestViewThumbnailFallback(t *testing.T) {
	gdb, store := setupPhotoTest(t)
	landscapes, _ := seedCategories(t, gdb)
	svc := NewPhotoService(gdb, store)

	withThumb := db.Photo{
		Title: "A", ImagePath: "photos/a.jpg", ThumbPath: "thumbnails/a_thumb.jpg",
		Category: landscapes,
	}
	view := svc.View(withThumb)
	if view.ThumbnailURL != "/media/thumbnails/a_thumb.jpg" {
		t.Fatalf("unexpected thumbnail URL %q", view.ThumbnailURL)
	}

	withoutThumb := db.Photo{Title: "B", ImagePath: "photos/b.jpg", Category: landscapes}
	view = svc.View(withoutThumb)
	if view.ThumbnailURL != view.ImageURL {
		t.Fatalf("expected thumbnail to fall back to image URL, got %q vs %q", view.ThumbnailURL, view.ImageURL)
	}
}

func TestCreateDerivesThumbnail(t *testing.T) {
	gdb, store := setupPhotoTest(t)
	landscapes, _ := seedCategories(t, gdb)
	svc := NewPhotoService(gdb, store)

	ctx := context.Background()
	source := pngBytes(t, 1200, 600)
	if err := store.Save(ctx, "photos/2026/08/big.png", bytes.NewReader(source), int64(len(source)), "image/png"); err != nil {
		t.Fatalf("failed to store source image: %v", err)
	}

	photo, err := svc.Create(ctx, PhotoInput{
		Title:      "Big",
		ImagePath:  "photos/2026/08/big.png",
		CategoryID: landscapes.ID,
		IsPublic:   true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if photo.ThumbPath != "thumbnails/2026/08/big_thumb.jpg" {
		t.Fatalf("unexpected thumbnail key %q", photo.ThumbPath)
	}

	thumb, err := store.Open(ctx, photo.ThumbPath)
	if err != nil {
		t.Fatalf("thumbnail was not stored: %v", err)
	}
	thumb.Close()

	var stored db.Photo
	if err := gdb.First(&stored, photo.ID).Error; err != nil {
		t.Fatalf("failed to reload photo: %v", err)
	}
	if stored.ThumbPath != photo.ThumbPath {
		t.Fatalf("thumbnail path not persisted, got %q", stored.ThumbPath)
	}
}

func TestCreateFailsOnUndecodableImage(t *testing.T) {
	gdb, store := setupPhotoTest(t)
	landscapes, _ := seedCategories(t, gdb)
	svc := NewPhotoService(gdb, store)

	ctx := context.Background()
	if err := store.Save(ctx, "photos/broken.jpg", strings.NewReader("not an image"), 12, "image/jpeg"); err != nil {
		t.Fatalf("failed to store source: %v", err)
	}

	_, err := svc.Create(ctx, PhotoInput{
		Title:      "Broken",
		ImagePath:  "photos/broken.jpg",
		CategoryID: landscapes.ID,
	})
	if err == nil {
		t.Fatalf("expected save to fail for an undecodable image")
	}
}

func TestCreateValidation(t *testing.T) {
	gdb, store := setupPhotoTest(t)
	landscapes, _ := seedCategories(t, gdb)
	svc := NewPhotoService(gdb, store)

	ctx := context.Background()
	if _, err := svc.Create(ctx, PhotoInput{ImagePath: "photos/x.jpg", CategoryID: landscapes.ID}); !errors.Is(err, ErrPhotoInvalid) {
		t.Fatalf("expected ErrPhotoInvalid for missing title, got %v", err)
	}
	if _, err := svc.Create(ctx, PhotoInput{Title: "X", ImagePath: "photos/x.jpg", CategoryID: 9999}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
