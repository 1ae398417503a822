package middleware

import (
	"log/slog"
	"sync"

	"boral/config"
	"boral/internal/delivery/api/response"
	domainerrors "boral/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; it is reset once exceeded.
const maxTrackedClients = 10000

// RateLimiter throttles requests per client IP with a token bucket per client.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	enabled  bool
	logger   *slog.Logger
}

// NewRateLimiter creates a rate limiter from the rateLimit config section.
// A missing or disabled section yields a limiter that lets everything through.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		logger:   logger,
	}
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rl.enabled = true
		rl.rate = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		rl.burst = cfg.RateLimit.Burst
	}

	return rl
}

// getLimiter returns the limiter for key, creating it on first use.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

// Limit rejects requests over the client's budget with 429.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		key := c.RealIP()
		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("Rate limit exceeded",
				slog.String("client", key),
				slog.String("path", c.Request().URL.Path),
			)

			return response.HandleAppError(c, domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}
