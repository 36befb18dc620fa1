package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/http/response"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type OpportunityHandler struct {
	log           *logger.Logger
	opportunities services.ReuseOpportunityService
}

func NewOpportunityHandler(log *logger.Logger, opportunities services.ReuseOpportunityService) *OpportunityHandler {
	return &OpportunityHandler{log: log.With("handler", "OpportunityHandler"), opportunities: opportunities}
}

// GET /api/reuse-opportunities
func (h *OpportunityHandler) List(c *gin.Context) {
	rows, err := h.opportunities.ListRanked(requestDBC(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/reuse-opportunities
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req createOpportunityRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, h.log, err)
		return
	}
	created, err := h.opportunities.Create(requestDBC(c), req.toDomain())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondCreated(c, created.ID, "Reuse opportunity created successfully")
}
