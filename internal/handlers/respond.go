// Package handlers exposes the REST API over the service layer.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/apperrors"
)

// writeError converts any error into the JSON error envelope with the
// right HTTP status.
func writeError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Status, gin.H{"error": appErr})
}
