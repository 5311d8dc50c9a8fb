package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	trips *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(trips *service.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

// Create handles POST /v1/trips.
func (h *TripHandler) Create(c *gin.Context) {
	var in service.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	trip, err := h.trips.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// List handles GET /v1/trips.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// Get handles GET /v1/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.trips.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// Update handles PUT /v1/trips/:id.
func (h *TripHandler) Update(c *gin.Context) {
	var in service.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	trip, err := h.trips.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// Delete handles DELETE /v1/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
