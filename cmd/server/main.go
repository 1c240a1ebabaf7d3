package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"giveaway_system/internal/api"        // Custom package for API handlers
	"giveaway_system/internal/config"     // Custom package for configuration
	"giveaway_system/internal/middleware" // Custom package for middleware
	"giveaway_system/internal/repository" // Campaign storage

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	campaignRepo := repository.NewGormCampaignRepository(db) // Campaign storage layer

	// Root route
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the GiveAway API."})
	})

	// User routes
	userGroup := r.Group("/api/users")
	userGroup.POST("/register", api.RegisterHandler(db))                // Registration endpoint
	userGroup.POST("/login", api.LoginHandler(db, cfg.JWTSecret))       // Login endpoint
	userGroup.POST("/change-password", middleware.JWTAuthMiddleware(cfg.JWTSecret), api.ChangePasswordHandler(db)) // Password rotation endpoint

	// Campaign routes (protected by JWT)
	campaignGroup := r.Group("/api/campaigns")
	// Protect campaign routes with JWT middleware and inject Redis client into context
	campaignGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	})
	campaignGroup.POST("", api.CreateCampaignHandler(campaignRepo))            // Create campaign endpoint
	campaignGroup.GET("", api.ListCampaignsHandler(campaignRepo, redisClient)) // List own campaigns endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
