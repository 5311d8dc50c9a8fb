package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/service"
)

// SettlementHandler handles HTTP requests for balances and settlements.
type SettlementHandler struct {
	settlements *service.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlements *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// Balances handles GET /v1/trips/:id/balances.
func (h *SettlementHandler) Balances(c *gin.Context) {
	sheet, err := h.settlements.Balances(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// Participant handles GET /v1/trips/:id/participants/:name.
func (h *SettlementHandler) Participant(c *gin.Context) {
	summary, err := h.settlements.Participant(c.Request.Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// confirmRequest identifies the instruction to confirm by its pair.
type confirmRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Confirm handles POST /v1/trips/:id/settlements.
func (h *SettlementHandler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	rec, err := h.settlements.Confirm(c.Request.Context(), c.Param("id"), req.From, req.To)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// History handles GET /v1/settlements.
func (h *SettlementHandler) History(c *gin.Context) {
	records, err := h.settlements.History(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlements": records})
}
