package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/framelight/internal/auth"
	"github.com/framelight/internal/config"
	"github.com/framelight/internal/db"
	"github.com/framelight/internal/handler"
	"github.com/framelight/internal/router"
	"github.com/framelight/internal/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s stubVerifier) Verify(ctx context.Context, rawToken string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func setupServer(t *testing.T, verifier auth.TokenVerifier) (*gin.Engine, *gorm.DB) {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		SessionSecret: "test-secret",
		TemplateDir:   "../../web/template",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
		SiteBaseURL:   "http://framelight.test",
		Storage:       config.StorageConfig{Backend: "local"},
		SEO: config.SEOConfig{
			GoogleVerification: "abc123",
			BingVerification:   "bing456",
			YandexVerification: "yan789",
			SecurityContact:    "mailto:security@framelight.test",
		},
	}

	if verifier == nil {
		verifier = stubVerifier{err: errors.New("no verifier configured")}
	}

	store := storage.NewLocal(cfg.UploadDir, cfg.UploadURLPath)
	api := handler.NewAPI(gdb, cfg, store, verifier)
	return router.New(cfg, api), gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username, password string, staff bool) db.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := db.User{Username: username, Password: string(hashed), IsStaff: staff}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// login posts the credentials and returns the session cookies.
func login(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("login failed with status %d", w.Code)
	}
	return w.Result().Cookies()
}

// mergeCookies replaces cookies by name with any set on the response.
func mergeCookies(existing []*http.Cookie, resp *http.Response) []*http.Cookie {
	updated := resp.Cookies()
	if len(updated) == 0 {
		return existing
	}

	byName := map[string]*http.Cookie{}
	for _, c := range existing {
		byName[c.Name] = c
	}
	for _, c := range updated {
		byName[c.Name] = c
	}

	merged := make([]*http.Cookie, 0, len(byName))
	for _, c := range byName {
		merged = append(merged, c)
	}
	return merged
}

func doRequest(r *gin.Engine, method, target string, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedClientGallery(t *testing.T, gdb *gorm.DB, ownerID uint, protected bool) db.Gallery {
	t.Helper()

	profile := db.ClientProfile{UserID: ownerID, SessionType: "wedding"}
	if err := gdb.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	category := db.Category{Name: "Weddings", Slug: "weddings"}
	if err := gdb.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	photos := []db.Photo{
		{Title: "First dance", ImagePath: "photos/a.jpg", CategoryID: category.ID},
		{Title: "Ceremony", ImagePath: "photos/b.jpg", CategoryID: category.ID},
	}
	for i := range photos {
		if err := gdb.Create(&photos[i]).Error; err != nil {
			t.Fatalf("failed to seed photo: %v", err)
		}
	}

	gallery := db.Gallery{
		Name:              "Smith Wedding",
		Slug:              "smith-wedding",
		ClientProfileID:   profile.ID,
		IsActive:          true,
		PasswordProtected: protected,
		AccessPassword:    "sunset",
		Photos:            photos,
	}
	if err := gdb.Create(&gallery).Error; err != nil {
		t.Fatalf("failed to seed gallery: %v", err)
	}
	return gallery
}
