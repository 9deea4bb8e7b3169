package http

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/infrastructure/metrics"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// RateCounter contador con ventana fija (Redis INCR + EXPIRE).
type RateCounter interface {
	IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, error)
}

// RateLimitConfig límite de peticiones por IP y ruta dentro de Window.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RateLimit limita por IP y ruta. Sin contador no limita; si el contador falla
// la petición pasa.
func RateLimit(counter RateCounter, cfg RateLimitConfig, log *logger.Logger) fiber.Handler {
	if counter == nil || cfg.Limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		path := routePath(c)
		key := fmt.Sprintf("ratelimit:%s:%s", c.IP(), path)

		count, err := counter.IncrWithExpire(c.UserContext(), key, cfg.Window)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limit no disponible")
			return c.Next()
		}

		remaining := cfg.Limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(cfg.Window).Unix(), 10))

		if int(count) > cfg.Limit {
			metrics.RecordRateLimited(path)
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(cfg.Window.Seconds())))
			return newAPIError(fiber.StatusTooManyRequests, CodeRateLimited, "Demasiadas solicitudes, intenta más tarde")
		}
		return c.Next()
	}
}

// Metrics registra método, ruta y estado de cada petición en Prometheus.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		metrics.ObserveHTTP(c.Method(), routePath(c), responseStatus(c, err), time.Since(start))
		return err
	}
}

// RequestLogger una línea de log por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)
		log.ForStatus(status).Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", requestID(c)).
			Msg("http")
		return err
	}
}

// responseStatus estado final: si hay error todavía no lo escribió ErrorHandler.
func responseStatus(c *fiber.Ctx, err error) int {
	if err != nil {
		status, _ := classify(err)
		return status
	}
	return c.Response().StatusCode()
}

func routePath(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" {
		return r.Path
	}
	return c.Path()
}
