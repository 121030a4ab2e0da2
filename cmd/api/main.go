package main

// @title Traveloki Service API
// @version 1.0.0
// @description Attraction catalog and recommendation service for Medan. Serves a
// @description verified attraction catalog with geospatial radius search and a
// @description community recommendation pipeline with admin moderation.
// @description
// @description Main features:
// @description - Verified attraction catalog with category filtering and text search
// @description - Nearby search by great-circle distance within a radius
// @description - Community recommendations with approve/reject moderation
// @description - User accounts with JWT authentication
// @description - Statistics over the catalog and the review queue

// @contact.name API Support
// @contact.email support@traveloki.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/traveloki-service/docs"
	"github.com/traveloki-service/internal/config"
	httpDelivery "github.com/traveloki-service/internal/delivery/http"
	"github.com/traveloki-service/internal/delivery/http/handler"
	"github.com/traveloki-service/internal/pkg/auth"
	"github.com/traveloki-service/internal/pkg/logger"
	"github.com/traveloki-service/internal/repository/cache"
	"github.com/traveloki-service/internal/repository/postgres"
	"github.com/traveloki-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Traveloki Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	attractionRepo := postgres.NewAttractionRepository(db)
	recommendationRepo := postgres.NewRecommendationRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	userRepo := postgres.NewUserRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	limiter := cache.NewLimiterStore(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	attractionUC := usecase.NewAttractionUseCase(attractionRepo, categoryRepo, log)
	recommendationUC := usecase.NewRecommendationUseCase(recommendationRepo, categoryRepo, log)
	accountUC := usecase.NewAccountUseCase(userRepo, tokens, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	attractionHandler := handler.NewAttractionHandler(attractionUC, log)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC, log)
	userHandler := handler.NewUserHandler(accountUC, log)
	categoryHandler := handler.NewCategoryHandler(categoryUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tokens,
		limiter,
		attractionHandler,
		recommendationHandler,
		userHandler,
		categoryHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
