package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/http/response"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type IndustryHandler struct {
	log        *logger.Logger
	industries services.IndustryService
}

func NewIndustryHandler(log *logger.Logger, industries services.IndustryService) *IndustryHandler {
	return &IndustryHandler{log: log.With("handler", "IndustryHandler"), industries: industries}
}

// GET /api/industries
func (h *IndustryHandler) List(c *gin.Context) {
	rows, err := h.industries.List(requestDBC(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/industries
func (h *IndustryHandler) Create(c *gin.Context) {
	var req createIndustryRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, h.log, err)
		return
	}
	created, err := h.industries.Create(requestDBC(c), req.toDomain())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondCreated(c, created.ID, "Industry created successfully")
}

// DELETE /api/industries/:id
func (h *IndustryHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if err := h.industries.Delete(requestDBC(c), id); err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"id": id, "message": "Industry deleted successfully", "success": true})
}
