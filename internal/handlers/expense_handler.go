package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/service"
)

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create handles POST /v1/trips/:id/expenses.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in service.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// ListByTrip handles GET /v1/trips/:id/expenses.
func (h *ExpenseHandler) ListByTrip(c *gin.Context) {
	expenses, err := h.expenses.ListByTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// Update handles PUT /v1/expenses/:id.
func (h *ExpenseHandler) Update(c *gin.Context) {
	var in service.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /v1/expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
