package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/framelight/internal/db"
	"github.com/framelight/internal/storage"
	"github.com/framelight/internal/thumbnail"
	"gorm.io/gorm"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrPhotoInvalid  = errors.New("photo title and image are required")
)

// PhotoService manages portfolio photos and their read projections.
type PhotoService struct {
	db    *gorm.DB
	store storage.Storage
}

// NewPhotoService creates a PhotoService instance.
func NewPhotoService(gdb *gorm.DB, store storage.Storage) *PhotoService {
	return &PhotoService{db: gdb, store: store}
}

// PhotoView is the denormalized record served to the public filter API.
type PhotoView struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Location     string `json:"location"`
}

// PhotoInput represents fields accepted when creating a photo.
type PhotoInput struct {
	Title       string
	ImagePath   string
	CategoryID  uint
	Description string
	Location    string
	DateTaken   *time.Time
	IsFeatured  bool
	IsPublic    bool
	IsHero      bool
	IsAbout     bool
}

// View projects a photo into its public shape. The thumbnail URL falls
// back to the full image when no thumbnail exists.
func (s *PhotoService) View(p db.Photo) PhotoView {
	imageURL := s.store.URL(p.ImagePath)
	thumbURL := imageURL
	if p.ThumbPath != "" {
		thumbURL = s.store.URL(p.ThumbPath)
	}
	return PhotoView{
		ID:           p.ID,
		Title:        p.Title,
		ImageURL:     imageURL,
		ThumbnailURL: thumbURL,
		Category:     p.Category.Slug,
		Description:  p.Description,
		Location:     p.Location,
	}
}

// FilterPublic returns every public photo, optionally narrowed to one
// category slug, most recently uploaded first.
func (s *PhotoService) FilterPublic(categorySlug string) ([]PhotoView, error) {
	query := s.db.Preload("Category").Where("is_public = ?", true)

	slug := strings.TrimSpace(categorySlug)
	if slug != "" && slug != "all" {
		var category db.Category
		if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var photos []db.Photo
	if err := query.Order("created_at desc").Find(&photos).Error; err != nil {
		return nil, err
	}

	views := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, s.View(p))
	}
	return views, nil
}

// HomePhotos returns the hero strip, the featured grid and the about
// portrait for the landing page. Only public photos are considered.
func (s *PhotoService) HomePhotos() (hero, featured []db.Photo, about *db.Photo, err error) {
	base := func() *gorm.DB { return s.db.Where("is_public = ?", true).Order("created_at desc") }

	if err = base().Where("is_hero = ?", true).Limit(5).Find(&hero).Error; err != nil {
		return nil, nil, nil, err
	}
	if err = base().Where("is_featured = ?", true).Limit(12).Find(&featured).Error; err != nil {
		return nil, nil, nil, err
	}

	var aboutPhoto db.Photo
	err = base().Where("is_about = ?", true).First(&aboutPhoto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return hero, featured, nil, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return hero, featured, &aboutPhoto, nil
}

// Get fetches a photo by id with its category.
func (s *PhotoService) Get(id uint) (*db.Photo, error) {
	var photo db.Photo
	if err := s.db.Preload("Category").First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// Create inserts a photo and, when it carries an image but no
// thumbnail, synchronously derives the bounded thumbnail and persists
// its location. An undecodable image fails the save operation.
func (s *PhotoService) Create(ctx context.Context, input PhotoInput) (*db.Photo, error) {
	title := strings.TrimSpace(input.Title)
	imagePath := strings.TrimSpace(input.ImagePath)
	if title == "" || imagePath == "" {
		return nil, ErrPhotoInvalid
	}

	var category db.Category
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	photo := db.Photo{
		Title:       title,
		ImagePath:   imagePath,
		CategoryID:  category.ID,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		DateTaken:   input.DateTaken,
		IsFeatured:  input.IsFeatured,
		IsPublic:    input.IsPublic,
		IsHero:      input.IsHero,
		IsAbout:     input.IsAbout,
	}
	if err := s.db.Create(&photo).Error; err != nil {
		return nil, err
	}

	if photo.ThumbPath == "" {
		if err := s.createThumbnail(ctx, &photo); err != nil {
			return nil, err
		}
	}

	photo.Category = category
	return &photo, nil
}

func (s *PhotoService) createThumbnail(ctx context.Context, photo *db.Photo) error {
	src, err := s.store.Open(ctx, photo.ImagePath)
	if err != nil {
		return fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	data, err := thumbnail.Generate(src)
	if err != nil {
		return err
	}

	thumbKey := thumbKeyFor(photo.ImagePath)
	if err := s.store.Save(ctx, thumbKey, bytes.NewReader(data), int64(len(data)), "image/jpeg"); err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}

	if err := s.db.Model(photo).Update("thumb_path", thumbKey).Error; err != nil {
		return err
	}
	photo.ThumbPath = thumbKey
	return nil
}

// thumbKeyFor mirrors the source key under thumbnails/ with a _thumb
// suffix, e.g. photos/2026/01/a.png -> thumbnails/2026/01/a_thumb.jpg.
func thumbKeyFor(imageKey string) string {
	dir := path.Dir(imageKey)
	dir = strings.TrimPrefix(dir, "photos/")
	if dir == "." || dir == "photos" {
		dir = ""
	}

	base := path.Base(imageKey)
	base = strings.TrimSuffix(base, path.Ext(base)) + "_thumb.jpg"
	return path.Join("thumbnails", dir, base)
}
