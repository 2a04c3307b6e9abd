package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"butce/internal/auth"
	"butce/internal/blob"
	"butce/internal/config"
	"butce/internal/database"
	"butce/internal/handlers"
	"butce/internal/logger"
	"butce/internal/middleware"
	"butce/internal/persist"
	"butce/internal/services"
	"butce/internal/store"
	"butce/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize blob storage
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to prepare blob storage: %w", err)
	}

	// Restore application state, falling back to seed data where needed
	adapter := persist.New(blob.NewGormStore(dbManager.DB()))
	entityStore := store.New()
	entityStore.Restore(adapter.Load())

	// Auth gateway
	gateway, err := auth.NewFromConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to configure auth gateway: %w", err)
	}
	log.Infof("Auth provider: %s", appConfig.AuthProvider)

	// Initialize services
	userService := services.NewUserService(entityStore, adapter)
	categoryService := services.NewCategoryService(entityStore, adapter)
	transactionService := services.NewTransactionService(entityStore, adapter)
	dashboardService := services.NewDashboardService(entityStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(gateway)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Custom request validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/signin", authHandler.SignIn)
	authRoutes.POST("/signup", authHandler.SignUp)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.Auth())

	// User routes
	users := protected.Group("/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// Dashboard route
	protected.GET("/dashboard", dashboardHandler.Overview)

	log.Infof("Starting budget backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
