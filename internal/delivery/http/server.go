package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/config"
	"github.com/traveloki-service/internal/delivery/http/handler"
	"github.com/traveloki-service/internal/delivery/http/middleware"
	"github.com/traveloki-service/internal/pkg/auth"
	"github.com/traveloki-service/internal/repository/cache"
)

// Server is the Fiber HTTP server with all routes wired in.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	tokens  *auth.TokenManager
	limiter *cache.LimiterStore

	// Handlers
	attractionHandler     *handler.AttractionHandler
	recommendationHandler *handler.RecommendationHandler
	userHandler           *handler.UserHandler
	categoryHandler       *handler.CategoryHandler
	statsHandler          *handler.StatsHandler
}

// NewServer builds the Fiber app, middleware chain and route table.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *auth.TokenManager,
	limiter *cache.LimiterStore,
	attractionHandler *handler.AttractionHandler,
	recommendationHandler *handler.RecommendationHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Traveloki Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                   app,
		config:                cfg,
		logger:                logger,
		tokens:                tokens,
		limiter:               limiter,
		attractionHandler:     attractionHandler,
		recommendationHandler: recommendationHandler,
		userHandler:           userHandler,
		categoryHandler:       categoryHandler,
		statsHandler:          statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	if s.limiter != nil {
		s.app.Use(middleware.RateLimit(
			s.limiter,
			s.config.RateLimit.Max,
			s.config.RateLimit.Window,
			s.logger,
		))
	}
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	authn := middleware.Authenticate(s.tokens)
	optionalAuthn := middleware.OptionalAuthenticate(s.tokens)
	admin := middleware.RequireAdmin()

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Accounts
	users := api.Group("/users")
	users.Post("/register", s.userHandler.Register)
	users.Post("/login", s.userHandler.Login)
	users.Get("/profile", authn, s.userHandler.Profile)

	// Categories (read only; the set is seeded by migrations)
	api.Get("/categories", s.categoryHandler.List)
	api.Get("/categories/:id", s.categoryHandler.GetByID)

	// Verified catalog
	attractions := api.Group("/attractions")
	attractions.Get("/", s.attractionHandler.List)
	attractions.Get("/medan", s.attractionHandler.Grouped)
	attractions.Get("/search", s.attractionHandler.Search)
	attractions.Get("/nearby", s.attractionHandler.Nearby)
	attractions.Get("/:id", s.attractionHandler.GetByID)
	attractions.Post("/", authn, admin, s.attractionHandler.Create)
	attractions.Put("/:id", authn, admin, s.attractionHandler.Update)
	attractions.Delete("/:id", authn, admin, s.attractionHandler.Delete)

	// Moderation pipeline
	recommendations := api.Group("/recommendations")
	recommendations.Post("/", optionalAuthn, s.recommendationHandler.Submit)
	recommendations.Get("/mine", authn, s.recommendationHandler.ListMine)
	recommendations.Get("/pending", authn, admin, s.recommendationHandler.ListPending)
	recommendations.Post("/:id/approve", authn, admin, s.recommendationHandler.Approve)
	recommendations.Post("/:id/reject", authn, admin, s.recommendationHandler.Reject)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start runs the HTTP server on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
