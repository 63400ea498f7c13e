package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/scribehq/scribe/internal/cache"
	"github.com/scribehq/scribe/internal/handlers"
	"github.com/scribehq/scribe/internal/middleware"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/repositories"
	"github.com/scribehq/scribe/internal/storage"
	"gorm.io/gorm"
)

// Options carries the externally configured collaborators.
type Options struct {
	DB            *gorm.DB
	Images        storage.ImageStore
	PageCache     *cache.PageCache
	SessionSecret string
	PageSize      int
	MediaDir      string
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes runs migrations, builds the repositories and handlers,
// and wires the route table.
func SetupRoutes(e *echo.Echo, opts Options) error {
	err := opts.DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	log.Println("Auto-migrations completed for all models.")

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(opts.DB)
	groupRepo := repositories.NewGormGroupRepository(opts.DB)
	postRepo := repositories.NewGormPostRepository(opts.DB)
	commentRepo := repositories.NewGormCommentRepository(opts.DB)
	followRepo := repositories.NewGormFollowRepository(opts.DB)

	// Session loading runs on every route; protection is per-group.
	e.Use(middleware.LoadUser(opts.SessionSecret, userRepo))
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Operational endpoints.
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if opts.MediaDir != "" {
		e.Static("/media", opts.MediaDir)
	}

	// --- Unprotected routes ---
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, opts.SessionSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, groupRepo, userRepo,
		commentRepo, followRepo, opts.Images, opts.PageCache, opts.PageSize)
	postHandler.RegisterPublicRoutes(e)

	aboutHandler := handlers.NewAboutHandler()
	aboutHandler.RegisterAboutRoutes(e)
	log.Println("Public routes configured.")

	// --- Protected routes (require a session; anonymous callers are
	// redirected to the login page) ---
	protected := e.Group("", middleware.RequireLogin())
	postHandler.RegisterProtectedRoutes(protected)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterProtectedRoutes(protected)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterProtectedRoutes(protected)

	adminHandler := handlers.NewAdminHandler(opts.PageCache)
	adminHandler.RegisterProtectedRoutes(protected)
	log.Println("Protected routes configured.")

	log.Println("All routes configured.")
	return nil
}
