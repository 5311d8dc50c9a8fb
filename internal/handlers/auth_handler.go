package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/auth"
	"github.com/umairk/tripsplit/internal/config"
)

// AuthHandler exchanges the shared access key for a session token.
type AuthHandler struct {
	cfg        *config.Config
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler. jwtManager may be nil when
// auth is not configured.
func NewAuthHandler(cfg *config.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

type tokenRequest struct {
	AccessKey string `json:"accessKey"`
}

// Token handles POST /v1/auth/token.
func (h *AuthHandler) Token(c *gin.Context) {
	if !h.cfg.AuthEnabled() || h.jwtManager == nil {
		writeError(c, apperrors.New(apperrors.TypeValidation,
			"authentication is not enabled on this server", ""))
		return
	}

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	if err := auth.VerifyAccessKey(h.cfg.AccessKeyHash, req.AccessKey); err != nil {
		writeError(c, apperrors.Unauthenticated("invalid access key"))
		return
	}

	token, err := h.jwtManager.Generate()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": h.cfg.TokenTTL.String()})
}
