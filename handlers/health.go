package handlers

import (
	"net/http"

	"intellisql/logger"

	"github.com/gin-gonic/gin"
)

const healthCacheKey = "health:db"

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Reports whether the student database can be opened. The probe result is cached briefly
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Failure      503  {object}  map[string]string  "Database unavailable"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	dbStatus, found := h.cache.Get(healthCacheKey)
	if !found {
		dbStatus = "connected"
		if err := h.sqlService.Ping(c.Request.Context()); err != nil {
			logger.Warn().Err(err).Msg("database health probe failed")
			dbStatus = "unavailable"
		}
		h.cache.SetDefault(healthCacheKey, dbStatus)
	}

	status := gin.H{
		"status":     "healthy",
		"db":         dbStatus,
		"ai_service": "ready",
		"model":      h.modelName,
	}

	code := http.StatusOK
	if dbStatus != "connected" {
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, status)
}
