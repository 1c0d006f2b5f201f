package router

import (
	"time"

	"github.com/cookhub/backend/internal/handlers"
	"github.com/cookhub/backend/internal/middleware"
	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/cookhub/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware. The request deadline
// lives here at the boundary, not inside handlers.
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.ContextTimeout(30 * time.Second))
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Review{},
		&models.Follow{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate models: %v", err)
	}
	logrus.Info("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	recipeRepo := repositories.NewGormRecipeRepository(db)
	reviewRepo := repositories.NewGormReviewRepository(db)

	public := e.Group("/api/v1")
	protected := e.Group("/api/v1", middleware.JWTAuthMiddleware(cfg.JWTSecret))

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(public, protected)
	logrus.Info("Auth routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, followRepo, recipeRepo)
	userHandler.RegisterUserRoutes(public, protected)
	logrus.Info("User routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo)
	followHandler.RegisterFollowRoutes(public, protected)
	logrus.Info("Follow routes configured.")

	recipeHandler := handlers.NewRecipeHandler(recipeRepo)
	recipeHandler.RegisterRecipeRoutes(public, protected)
	logrus.Info("Recipe routes configured.")

	reviewHandler := handlers.NewReviewHandler(reviewRepo, recipeRepo)
	reviewHandler.RegisterReviewRoutes(public, protected)
	logrus.Info("Review routes configured.")

	logrus.Info("All routes configured.")
}
