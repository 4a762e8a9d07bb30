package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car-selling-service/internal/config"
	"car-selling-service/internal/delivery/http/handler"
	"car-selling-service/internal/domain/listing"
	"car-selling-service/internal/infrastructure/database/postgres"
	"car-selling-service/internal/logger"
	"car-selling-service/internal/middleware"
	authUsecase "car-selling-service/internal/usecase/auth"
	listingUsecase "car-selling-service/internal/usecase/listing"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, imageStore listing.ImageStore) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Car Selling Service API is running",
			"status":  "active",
			"version": "1.0.0",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	authService := authUsecase.NewService(userRepository, cfg)
	authHandler := handler.NewAuthHandler(authService)

	listingRepository := postgres.NewListingRepository(db)
	listingService := listingUsecase.NewService(listingRepository, imageStore)
	listingHandler := handler.NewListingHandler(listingService)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			listingHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
