package router

import (
	"path/filepath"

	"github.com/framelight/internal/config"
	"github.com/framelight/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "framelight_session"

// New configures the gin engine and all routes.
func New(cfg *config.Config, api *handler.API) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(sessionName, store))

	r.LoadHTMLGlob(filepath.Join(cfg.TemplateDir, "*.html"))

	if cfg.Storage.Backend == "local" {
		r.Static(cfg.UploadURLPath, cfg.UploadDir)
	}

	// Public pages
	r.GET("/", api.ShowHome)
	r.GET("/portfolio", api.ShowPortfolio)
	r.GET("/about", api.ShowAbout)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)
	r.POST("/api/filter-photos", api.FilterPhotos)

	// Authentication
	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)

	authAPI := r.Group("/api/auth")
	{
		authAPI.POST("/firebase-login", api.FirebaseLogin)
		authAPI.POST("/logout", api.FirebaseLogout)
		authAPI.POST("/verify-token", api.VerifyToken)
		authAPI.GET("/current-user", api.CurrentUser)
	}

	// Client galleries. The wildcard carries a slug on detail routes
	// and a numeric id on the toggle route; gin requires one name.
	client := r.Group("/gallery")
	client.Use(handler.AuthRequired())
	{
		client.GET("", api.ShowClientGalleries)
		client.GET("/:gallery", api.ShowGalleryDetail)
		client.POST("/:gallery", api.ShowGalleryDetail)
		client.POST("/:gallery/photo/:photo_id/toggle", api.ToggleSelection)
	}

	// Staff surface
	staff := r.Group("/dashboard")
	staff.Use(handler.AuthRequired(), handler.StaffRequired())
	{
		staff.GET("", api.ShowDashboard)
		staff.POST("/messages/:id/toggle-read", api.ToggleMessageRead)
	}

	admin := r.Group("/admin/api")
	admin.Use(handler.AuthRequired(), handler.StaffRequired())
	{
		admin.POST("/photos", api.UploadPhoto)
		admin.POST("/categories", api.CreateCategory)
	}

	// SEO and meta files
	r.GET("/robots.txt", api.RobotsTxt)
	r.GET("/.well-known/security.txt", api.SecurityTxt)
	r.GET("/ads.txt", api.AdsTxt)
	r.GET("/sitemap.xml", api.Sitemap)
	if code := cfg.SEO.GoogleVerification; code != "" {
		r.GET("/google"+code+".html", api.GoogleVerification)
	}
	if cfg.SEO.BingVerification != "" {
		r.GET("/BingSiteAuth.xml", api.BingVerification)
	}
	if code := cfg.SEO.YandexVerification; code != "" {
		r.GET("/yandex_"+code+".html", api.YandexVerification)
	}

	return r
}
