package main

import (
	"context"
	"log"

	"github.com/framelight/internal/auth"
	"github.com/framelight/internal/config"
	"github.com/framelight/internal/db"
	"github.com/framelight/internal/handler"
	"github.com/framelight/internal/router"
	"github.com/framelight/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureStaffUser(cfg.StaffUser, cfg.StaffPassword); err != nil {
		log.Fatalf("failed to ensure staff user: %v", err)
	}

	store, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	verifier := buildVerifier(cfg)

	api := handler.NewAPI(db.DB, cfg, store, verifier)
	r := router.New(cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.Storage.Backend == "s3" {
		return storage.NewS3(storage.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			UseSSL:    cfg.S3.UseSSL,
			PublicURL: cfg.S3.PublicURL,
		})
	}
	return storage.NewLocal(cfg.UploadDir, cfg.UploadURLPath), nil
}

func buildVerifier(cfg *config.Config) auth.TokenVerifier {
	if cfg.Firebase.ProjectID == "" {
		log.Printf("FIREBASE_PROJECT_ID not set, identity-token login disabled")
		return auth.DisabledVerifier{}
	}

	verifier, err := auth.NewFirebaseVerifier(context.Background(), cfg.Firebase.ProjectID)
	if err != nil {
		log.Fatalf("failed to initialize identity verifier: %v", err)
	}
	return verifier
}
