package handler

import (
	"time"

	"github.com/framelight/internal/auth"
	"github.com/framelight/internal/config"
	"github.com/framelight/internal/service"
	"github.com/framelight/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	cfg        *config.Config
	store      storage.Storage
	verifier   auth.TokenVerifier
	auth       *auth.Service
	photos     *service.PhotoService
	categories *service.CategoryService
	galleries  *service.GalleryService
	contacts   *service.ContactService
	settings   *service.SettingsService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg *config.Config, store storage.Storage, verifier auth.TokenVerifier) *API {
	return &API{
		db:         gdb,
		cfg:        cfg,
		store:      store,
		verifier:   verifier,
		auth:       auth.NewService(gdb, verifier),
		photos:     service.NewPhotoService(gdb, store),
		categories: service.NewCategoryService(gdb),
		galleries:  service.NewGalleryService(gdb),
		contacts:   service.NewContactService(gdb),
		settings:   service.NewSettingsService(gdb),
	}
}

// renderHTML attaches the site name and current year to every page.
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		settings, err := a.settings.Get()
		if err != nil {
			c.Error(err)
		}
		payload["site"] = settings.SiteName
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}

func (a *API) renderNotFound(c *gin.Context) {
	a.renderHTML(c, 404, "error.html", gin.H{
		"title": "Not Found",
		"error": "The page you are looking for does not exist.",
	})
}
