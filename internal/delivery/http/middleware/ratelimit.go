package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/repository/cache"
)

// RateLimit caps requests per client IP within a fixed window, with the
// counters held in Redis so the limit holds across instances. When Redis is
// unreachable the limiter fails open; availability beats throttling here.
func RateLimit(store *cache.LimiterStore, max int, window time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hits, err := store.Hit(c.Context(), c.IP(), window)
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			return c.Next()
		}

		if hits > int64(max) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "RATE_LIMITED",
					"message": "Too many requests, slow down",
				},
			})
		}

		return c.Next()
	}
}
