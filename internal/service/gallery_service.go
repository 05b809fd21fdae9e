package service

import (
	"errors"

	"github.com/framelight/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound      = errors.New("gallery not found")
	ErrGalleryAccessDenied  = errors.New("gallery belongs to another client")
	ErrClientProfileMissing = errors.New("no client profile for user")
	ErrSelectionForbidden   = errors.New("selection change not permitted")
)

// GalleryService owns client galleries and their access rules.
type GalleryService struct {
	db *gorm.DB
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ProfileForUser resolves the client profile belonging to a user.
func (s *GalleryService) ProfileForUser(userID uint) (*db.ClientProfile, error) {
	var profile db.ClientProfile
	err := s.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientProfileMissing
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListForClient returns the active galleries owned by the user's
// client profile, newest first.
func (s *GalleryService) ListForClient(userID uint) (*db.ClientProfile, []db.Gallery, error) {
	profile, err := s.ProfileForUser(userID)
	if err != nil {
		return nil, nil, err
	}

	var galleries []db.Gallery
	if err := s.db.Preload("CoverPhoto").
		Where("client_profile_id = ? AND is_active = ?", profile.ID, true).
		Order("created_at desc").
		Find(&galleries).Error; err != nil {
		return nil, nil, err
	}
	return profile, galleries, nil
}

// GetForViewer loads an active gallery by slug and applies the
// ownership rule: only the owning client or staff may see it. Inactive
// or unknown slugs are not found regardless of the viewer.
func (s *GalleryService) GetForViewer(slug string, viewerID uint, isStaff bool) (*db.Gallery, error) {
	var gallery db.Gallery
	err := s.db.Preload("ClientProfile.User").
		Preload("Photos.Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&gallery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGalleryNotFound
	}
	if err != nil {
		return nil, err
	}

	if !isStaff && gallery.ClientProfile.UserID != viewerID {
		return nil, ErrGalleryAccessDenied
	}
	return &gallery, nil
}

// CheckPassword compares the submitted password against the stored
// secret by exact string match.
func (s *GalleryService) CheckPassword(gallery *db.Gallery, password string) bool {
	return password == gallery.AccessPassword
}

// SelectedPhotoIDs returns the ids of the gallery's selected subset.
func (s *GalleryService) SelectedPhotoIDs(gallery *db.Gallery) ([]uint, error) {
	var photos []db.Photo
	if err := s.db.Model(gallery).Association("SelectedPhotos").Find(&photos); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// ToggleSelection flips a photo's membership in the gallery's selected
// set. Only the owning client or staff may toggle. Returns the new
// membership state and total selected count.
func (s *GalleryService) ToggleSelection(galleryID, photoID, viewerID uint, isStaff bool) (selected bool, total int64, err error) {
	var gallery db.Gallery
	if err := s.db.Preload("ClientProfile").First(&gallery, galleryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrGalleryNotFound
		}
		return false, 0, err
	}

	if !isStaff && gallery.ClientProfile.UserID != viewerID {
		return false, 0, ErrSelectionForbidden
	}

	var photo db.Photo
	if err := s.db.First(&photo, photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrPhotoNotFound
		}
		return false, 0, err
	}

	assoc := s.db.Model(&gallery).Association("SelectedPhotos")

	var existing []db.Photo
	if err := assoc.Find(&existing, photo.ID); err != nil {
		return false, 0, err
	}

	if len(existing) > 0 {
		if err := assoc.Delete(&photo); err != nil {
			return false, 0, err
		}
		selected = false
	} else {
		if err := assoc.Append(&photo); err != nil {
			return false, 0, err
		}
		selected = true
	}

	return selected, assoc.Count(), nil
}
