package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/music-catalog/internal/middleware"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/labstack/echo/v4"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /status.
type HealthHandler struct {
	Handler
	db pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

// CheckHealth probes every configured dependency and answers 200 when all
// of them respond, 503 otherwise. Failures are recorded as New Relic
// custom events when the agent is enabled.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	healthCfg := h.server.Config.Observability.HealthChecks
	isHealthy := true

	if healthCfg.Enabled {
		for _, name := range healthCfg.Checks {
			if name != "database" {
				continue
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), healthCfg.Timeout)
			dbStart := time.Now()
			err := h.pingDatabase(ctx)
			cancel()
			elapsed := time.Since(dbStart)

			if err != nil {
				isHealthy = false
				checks["database"] = map[string]any{
					"status":        "unhealthy",
					"response_time": elapsed.String(),
					"error":         err.Error(),
				}

				logger.Error().
					Err(err).
					Dur("response_time", elapsed).
					Msg("database health check failed")

				h.recordEvent(map[string]any{
					"check_type":       "database",
					"operation":        "health_check",
					"error_type":       "database_unhealthy",
					"response_time_ms": elapsed.Milliseconds(),
					"error_message":    err.Error(),
				})
				continue
			}

			checks["database"] = map[string]any{
				"status":        "healthy",
				"response_time": elapsed.String(),
			}

			logger.Info().
				Dur("response_time", elapsed).
				Msg("database health check passed")
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordEvent(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errors.New("database not initialized")
	}
	return h.db.Ping(ctx)
}

func (h *HealthHandler) recordEvent(params map[string]any) {
	if h.server.LoggerService == nil {
		return
	}
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", params)
	}
}
