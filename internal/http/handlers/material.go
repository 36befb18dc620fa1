package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/http/response"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type MaterialHandler struct {
	log       *logger.Logger
	materials services.MaterialService
}

func NewMaterialHandler(log *logger.Logger, materials services.MaterialService) *MaterialHandler {
	return &MaterialHandler{log: log.With("handler", "MaterialHandler"), materials: materials}
}

// GET /api/materials?status=
func (h *MaterialHandler) List(c *gin.Context) {
	rows, err := h.materials.List(requestDBC(c), c.Query("status"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var req createMaterialRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, h.log, err)
		return
	}
	created, err := h.materials.Create(requestDBC(c), req.toDomain())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondCreated(c, created.ID, "Material registered successfully")
}
