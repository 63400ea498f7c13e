package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/cache"
	"github.com/scribehq/scribe/internal/router"
	"github.com/scribehq/scribe/internal/storage"
	"github.com/scribehq/scribe/internal/validators"
	"github.com/scribehq/scribe/pkg/config"
	"github.com/scribehq/scribe/web"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Image storage backend
	images, mediaDir, err := initImageStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.Renderer = web.NewRenderer()
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	err = router.SetupRoutes(e, router.Options{
		DB:            db.Postgres,
		Images:        images,
		PageCache:     cache.NewPageCache(cfg.IndexCacheTTL),
		SessionSecret: cfg.SessionSecret,
		PageSize:      cfg.PageSize,
		MediaDir:      mediaDir,
	})
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func initImageStore(cfg *config.Config) (storage.ImageStore, string, error) {
	if cfg.MediaDriver == "minio" {
		store, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.MinioBucket,
		})
		if err != nil {
			return nil, "", err
		}
		if err := store.EnsureBucket(context.Background()); err != nil {
			return nil, "", err
		}
		return store, "", nil
	}

	store, err := storage.NewDiskStore(cfg.MediaDir)
	if err != nil {
		return nil, "", err
	}
	return store, cfg.MediaDir, nil
}
