// Package middleware provides gin middleware for authentication and
// request logging.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/auth"
)

// RequireAuth validates the bearer token on every request. A nil manager
// means auth is not configured and all requests pass (local mode).
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtManager == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthenticated(c, auth.ErrMissingToken.Error())
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthenticated(c, "authorization header must be 'Bearer <token>'")
			return
		}

		if err := jwtManager.Validate(token); err != nil {
			abortUnauthenticated(c, auth.ErrInvalidToken.Error())
			return
		}

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, message string) {
	appErr := apperrors.Unauthenticated(message)
	c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr})
}
