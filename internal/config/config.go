package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Config aggregates everything the server reads from the environment.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	ListenAddr    string `env:"LISTEN_ADDR"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"framelight.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"framelight-dev-secret"`
	SiteBaseURL   string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	TemplateDir   string `env:"TEMPLATE_DIR" envDefault:"web/template"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"web/static/uploads"`
	UploadURLPath string `env:"UPLOAD_URL_PATH" envDefault:"/static/uploads"`

	StaffUser     string `env:"STAFF_USER"`
	StaffPassword string `env:"STAFF_PASSWORD"`

	Firebase FirebaseConfig `envPrefix:"FIREBASE_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	S3       S3Config       `envPrefix:"S3_"`
	SEO      SEOConfig      `envPrefix:"SEO_"`
}

// FirebaseConfig identifies the identity-provider project. Token
// verification only needs the project ID; the credential fields are
// accepted for parity with existing deployments.
type FirebaseConfig struct {
	ProjectID       string `env:"PROJECT_ID"`
	Credentials     string `env:"CREDENTIALS"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// StorageConfig selects the photo storage backend, local disk or s3.
type StorageConfig struct {
	Backend string `env:"BACKEND" envDefault:"local"`
}

type S3Config struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"framelight"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"true"`
	PublicURL string `env:"PUBLIC_URL"`
}

// SEOConfig carries search-engine verification codes and the
// security.txt contact address.
type SEOConfig struct {
	GoogleVerification string `env:"GOOGLE_VERIFICATION"`
	BingVerification   string `env:"BING_VERIFICATION"`
	YandexVerification string `env:"YANDEX_VERIFICATION"`
	SecurityContact    string `env:"SECURITY_CONTACT" envDefault:"mailto:security@framelight.example"`
}

// Load parses the environment into a Config, deriving the listen
// address from PORT when LISTEN_ADDR is unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}

	return cfg, nil
}
