package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/framelight/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInvalid  = errors.New("category name is required")
	ErrCategoryExists   = errors.New("category already exists")
)

// CategoryService manages portfolio categories.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// CategoryInput represents fields accepted when creating a category.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
}

// ListAll returns every category in display order.
func (s *CategoryService) ListAll() ([]db.Category, error) {
	var items []db.Category
	if err := s.db.Order("sort_order").Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetBySlug fetches one category by its slug.
func (s *CategoryService) GetBySlug(slug string) (*db.Category, error) {
	var item db.Category
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a category, deriving the slug from the name when absent.
func (s *CategoryService) Create(input CategoryInput) (*db.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryInvalid
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}

	var count int64
	if err := s.db.Model(&db.Category{}).
		Where("name = ? OR slug = ?", name, slug).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	item := db.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		SortOrder:   input.SortOrder,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

var slugStripper = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(name string) string {
	slug := slugStripper.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
