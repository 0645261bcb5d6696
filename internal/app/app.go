package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/pkg/config"
	"estatehub/pkg/jwt"
	"estatehub/pkg/logger"
	"estatehub/pkg/middleware"
	"estatehub/pkg/queue"
	"estatehub/pkg/s3"

	estateHTTP "estatehub/internal/controller/http"
	"estatehub/internal/repo/persistent"
	"estatehub/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "estatehub/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	propertyRepo := persistent.NewPropertyRepository(db)
	mediaRepo := persistent.NewMediaRepository(db)
	facilityRepo := persistent.NewFacilityRepository(db)
	inquiryRepo := persistent.NewInquiryRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Initialize use cases
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, s3Client, redisClient, log)
	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, propertyRepo, s3Client, log)
	facilityUseCase := usecase.NewFacilityUseCase(facilityRepo, propertyRepo, log)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, propertyRepo, notifierOrNil(queueClient), log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)

	// Initialize HTTP handlers
	propertyHandler := estateHTTP.NewPropertyHandler(propertyUseCase, facilityUseCase, log, cfg.PageSize, cfg.FeaturedPageSize)
	facilityHandler := estateHTTP.NewFacilityHandler(facilityUseCase, log)
	mediaHandler := estateHTTP.NewMediaHandler(mediaUseCase, log)
	inquiryHandler := estateHTTP.NewInquiryHandler(inquiryUseCase, log)
	authHandler := estateHTTP.NewAuthHandler(authUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/properties", propertyHandler.ListProperties)
		api.GET("/featured-properties", propertyHandler.ListFeaturedProperties)
		api.GET("/properties/:slug", propertyHandler.GetProperty)
		api.GET("/properties/:slug/nearby-facilities", propertyHandler.GetNearbyFacilities)
		api.POST("/auth/login", authHandler.Login)

		inquiries := api.Group("/inquiries")
		if redisClient != nil {
			inquiries.Use(middleware.RateLimitMiddleware(redisClient, cfg.InquiryRateLimit, time.Minute))
		}
		inquiries.POST("", inquiryHandler.CreateInquiry)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireRole("staff", "admin", "superadmin"))
	{
		admin.GET("/me", authHandler.Me)

		admin.GET("/properties", propertyHandler.AdminListProperties)
		admin.POST("/properties", propertyHandler.CreateProperty)
		admin.GET("/properties/:propertyId", propertyHandler.AdminGetProperty)
		admin.PUT("/properties/:propertyId", propertyHandler.UpdateProperty)
		admin.DELETE("/properties/:propertyId", propertyHandler.DeleteProperty)

		admin.POST("/properties/:propertyId/media", mediaHandler.UploadMedia)
		admin.PUT("/properties/:propertyId/media/:mediaId/featured", mediaHandler.SetFeaturedMedia)
		admin.DELETE("/media/:id", mediaHandler.DeleteMedia)

		admin.POST("/properties/:propertyId/facilities", facilityHandler.CreateFacility)
		admin.DELETE("/facilities/:id", facilityHandler.DeleteFacility)

		admin.GET("/inquiries", inquiryHandler.ListInquiries)
		admin.PUT("/inquiries/:id/status", inquiryHandler.UpdateInquiryStatus)
		admin.DELETE("/inquiries/:id", inquiryHandler.DeleteInquiry)

		users := admin.Group("/users")
		users.Use(middleware.RequireRole("superadmin"))
		users.POST("", authHandler.CreateUser)
		users.GET("", authHandler.ListUsers)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("EstateHub API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("EstateHub API exited")
}

// notifierOrNil keeps the inquiry usecase's Notifier a true nil interface
// when RabbitMQ is not configured.
func notifierOrNil(queueClient *queue.Client) usecase.Notifier {
	if queueClient == nil {
		return nil
	}
	return queueClient
}
