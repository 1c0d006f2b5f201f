package main

import (
	"github.com/cookhub/backend/internal/router"
	"github.com/cookhub/backend/internal/validators"
	"github.com/cookhub/backend/pkg/config"
	"github.com/cookhub/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env)

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
