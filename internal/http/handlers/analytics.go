package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/http/response"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type AnalyticsHandler struct {
	log         *logger.Logger
	analytics   services.AnalyticsService
	circulation services.CirculationService
}

func NewAnalyticsHandler(log *logger.Logger, analytics services.AnalyticsService, circulation services.CirculationService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:         log.With("handler", "AnalyticsHandler"),
		analytics:   analytics,
		circulation: circulation,
	}
}

// GET /api/dashboard-stats
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.analytics.Dashboard(requestDBC(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, stats)
}

// GET /api/symbiosis/network
func (h *AnalyticsHandler) Network(c *gin.Context) {
	graph, err := h.analytics.Network(requestDBC(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, graph)
}

// GET /api/analytics/circulation
func (h *AnalyticsHandler) Circulation(c *gin.Context) {
	rows, err := h.circulation.List(requestDBC(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, rows)
}
