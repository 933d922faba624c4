package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bookhive/database"
	"bookhive/internal/cache"
	"bookhive/internal/catalog"
	"bookhive/internal/config"
	"bookhive/internal/handler"
	"bookhive/internal/middleware"
	"bookhive/internal/repository"
	"bookhive/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	// The catalog is loaded once and treated as immutable for the process
	// lifetime.
	books, err := catalog.LoadCSV(cfg.CatalogCSVPath)
	if err != nil {
		log.Fatalf("could not load catalog: %v", err)
	}
	logger.Info("Catalog loaded", "books", books.Len())

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	// The feed cache is best effort; without redis every read goes to the
	// database.
	feedCache, err := cache.NewFeedCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("Redis unavailable, running without feed cache", "error", err)
		feedCache = nil
	} else {
		defer feedCache.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	statusRepo := repository.NewReadingStatusRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	ratingService := service.NewRatingService(ratingRepo, books, feedCache)
	statusService := service.NewReadingStatusService(statusRepo, books)
	statsService := service.NewStatsService(ratingRepo, books, feedCache)
	recommendService := service.NewRecommendService(ratingRepo, books)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	interestHandler := handler.NewInterestHandler(ratingService)
	statusHandler := handler.NewReadingStatusHandler(statusService, statsService, books)
	recommendHandler := handler.NewRecommendHandler(recommendService, statsService)
	statsHandler := handler.NewStatsHandler(statsService, books)
	catalogHandler := handler.NewCatalogHandler(books, statsService)
	friendHandler := handler.NewFriendHandler(ratingService, statusService, statsService, books)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "books": books.Len()})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	api := r.Group("/api", limiter.Middleware())

	// Public routes
	authHandler.RegisterRoutes(api)
	statsHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)

	// Authenticated routes
	authed := api.Group("", middleware.AuthMiddleware(authService))
	interestHandler.RegisterRoutes(authed)
	statusHandler.RegisterRoutes(authed)
	recommendHandler.RegisterRoutes(authed)
	friendHandler.RegisterRoutes(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
