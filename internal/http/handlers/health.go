package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type HealthHandler struct {
	log    *logger.Logger
	health services.HealthService
}

func NewHealthHandler(log *logger.Logger, health services.HealthService) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), health: health}
}

// GET /api/health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	report := h.health.Check(c.Request.Context())
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
