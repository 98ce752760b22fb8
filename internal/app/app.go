package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "inkwell/internal/controller/http"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/config"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"
	"inkwell/pkg/queue"
	"inkwell/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	_ "inkwell/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	userRepo := persistent.NewUserRepository(db)
	messageRepo := persistent.NewMessageRepository(db)
	wishlistRepo := persistent.NewWishlistRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, s3Client, redisClient, log)
	identityUseCase := usecase.NewIdentityUseCase(userRepo, queueClient, cfg.SiteURL, log)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, log)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, log)

	// Initialize HTTP handlers
	postHandler := controller.NewPostHandler(postUseCase, identityUseCase, log)
	authHandler := controller.NewAuthHandler(identityUseCase, oauthConfig, jwtService, redisClient, log)
	messageHandler := controller.NewMessageHandler(messageUseCase, log)
	wishlistHandler := controller.NewWishlistHandler(wishlistUseCase, log)
	userHandler := controller.NewUserHandler(identityUseCase, log)
	uploadHandler := controller.NewUploadHandler(postUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Public routes
	{
		api.GET("/posts/latest", postHandler.LatestPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.POST("/messages", messageHandler.SubmitMessage)

		api.GET("/auth/google/login", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)
		api.GET("/auth/signout", authHandler.SignOut)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	authed.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSeconds)*time.Second))
	{
		authed.GET("/auth/me", authHandler.Me)

		authed.POST("/wishlist", wishlistHandler.AddItem)
		authed.GET("/wishlist", wishlistHandler.GetWishlist)
		authed.GET("/wishlist/check", wishlistHandler.CheckItem)
		authed.DELETE("/wishlist/:id", wishlistHandler.RemoveItem)
	}

	// Dashboard routes (admin only)
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.AdminMiddleware())
	admin.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSeconds)*time.Second))
	{
		admin.POST("/posts", postHandler.CreatePost)
		admin.GET("/posts", postHandler.ListPosts)
		admin.PATCH("/posts/:id", postHandler.UpdatePost)
		admin.PATCH("/posts/:id/live", postHandler.ToggleLive)
		admin.DELETE("/posts/:id", postHandler.DeletePost)

		admin.POST("/uploads", uploadHandler.UploadImage)

		admin.GET("/messages", messageHandler.ListMessages)
		admin.DELETE("/messages/:id", messageHandler.DeleteMessage)

		admin.GET("/users", userHandler.ListUsers)
		admin.DELETE("/users/:id", userHandler.DeleteUser)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("API server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down API server...")

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

	log.Info("API server exited")
}
