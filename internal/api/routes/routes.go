package routes

import (
	"log"

	"admin-dashboard-backend/internal/api/handlers"
	"admin-dashboard-backend/internal/api/middleware"
	"admin-dashboard-backend/internal/auth"
	"admin-dashboard-backend/internal/config"
	"admin-dashboard-backend/internal/service"
	"admin-dashboard-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(directory *store.DirectoryStore, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize services
	directoryService := service.NewDirectoryService(directory, validate)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}
	if authConfig != nil && authConfig.JWTSecret == "" {
		authConfig.JWTSecret = cfg.JWTSecret
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(directory)
	userHandler := handlers.NewUserHandler(directoryService)
	accountHandler := handlers.NewAccountHandler(directoryService)
	selectionHandler := handlers.NewSelectionHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			sso := authGroup.Group("/sso")
			{
				sso.GET("/start", authHandler.StartSSO)
				sso.GET("/callback", authHandler.CallbackSSO)
			}
			authGroup.POST("/skip", authHandler.SkipLogin)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	// API v1 routes. Sessions are optional: the skip-login path enters the
	// dashboard unauthenticated, so the directory stays reachable without one.
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.OptionalAuth())
	}

	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/grouped", userHandler.ListUsersGrouped)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Account routes
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", accountHandler.ListAccounts)
			accounts.POST("", accountHandler.CreateAccount)
			accounts.GET("/:id", accountHandler.GetAccount)
			accounts.DELETE("/:id", accountHandler.DeleteAccount)
		}

		// Selection routes
		selection := v1.Group("/selection")
		{
			selection.GET("", selectionHandler.GetSelection)
			selection.PUT("", selectionHandler.Select)
			selection.DELETE("", selectionHandler.ClearSelection)
		}
	}

	return router
}
