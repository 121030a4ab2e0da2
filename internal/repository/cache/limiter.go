package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LimiterStore is a fixed-window request counter shared across instances.
// Keys expire with the window, so idle clients cost nothing.
type LimiterStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewLimiterStore(r *Redis) *LimiterStore {
	return &LimiterStore{
		client: r.Client(),
		logger: r.logger,
	}
}

// Hit increments the counter for key and returns the hit count within the
// current window. The expiry is set only on the first hit of a window.
func (s *LimiterStore) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := fmt.Sprintf("ratelimit:%s", key)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("Failed to increment rate limit counter",
			zap.String("key", fullKey), zap.Error(err))
		return 0, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val(), nil
}
