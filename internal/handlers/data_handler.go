package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/service"
)

// DataHandler handles whole-database export and wipe.
type DataHandler struct {
	data *service.DataService
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(data *service.DataService) *DataHandler {
	return &DataHandler{data: data}
}

// Export handles GET /v1/export.
func (h *DataHandler) Export(c *gin.Context) {
	export, err := h.data.Export(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, export)
}

// Wipe handles DELETE /v1/data.
func (h *DataHandler) Wipe(c *gin.Context) {
	if err := h.data.Wipe(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
