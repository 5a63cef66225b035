package main

import (
	"log"

	"admin-dashboard-backend/internal/api/routes"
	"admin-dashboard-backend/internal/config"
	"admin-dashboard-backend/internal/logger"
	"admin-dashboard-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "admin-dashboard-backend/docs" // This is needed for swag
)

//	@title			Admin Dashboard Backend API
//	@version		1.0
//	@description	Backend API for the admin dashboard, providing endpoints for browsing and managing accounts and their users.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	// Initialize the in-memory directory store. State lives for the process
	// lifetime only; a restart resets it to the sample dataset.
	directory := store.NewDirectoryStore()
	if cfg.SeedSampleData {
		if err := directory.LoadSampleData(); err != nil {
			logrus.Fatal("Failed to seed sample data:", err)
		}
		logrus.WithFields(logrus.Fields{
			"accounts": len(directory.ListAccounts()),
			"users":    len(directory.ListUsers()),
		}).Info("Seeded directory store with sample data")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(directory, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
