package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/http/response"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type TransactionHandler struct {
	log          *logger.Logger
	transactions services.TransactionService
}

func NewTransactionHandler(log *logger.Logger, transactions services.TransactionService) *TransactionHandler {
	return &TransactionHandler{log: log.With("handler", "TransactionHandler"), transactions: transactions}
}

// GET /api/transactions?status=
func (h *TransactionHandler) List(c *gin.Context) {
	rows, err := h.transactions.List(requestDBC(c), c.Query("status"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req createTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, h.log, err)
		return
	}
	created, err := h.transactions.Create(requestDBC(c), req.toDomain())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.RespondCreated(c, created.ID, "Transaction recorded successfully")
}
