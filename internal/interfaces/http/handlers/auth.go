// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/interfaces/http/middleware"
	"github.com/allithy/storefront-backend/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the admin gate
type AuthHandler struct {
	gate       *auth.Gate
	jwtManager *auth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		gate:       auth.NewGate(cfg),
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// AdminLoginRequest carries the shared admin secret
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// AdminLogin handles POST /admin/login. A correct secret yields a bearer
// token for the management endpoints. The response is identical for a
// wrong secret and an unconfigured gate.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !h.gate.Verify(req.Secret) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	sessionID, _ := middleware.GetSessionID(c)
	token, err := h.jwtManager.GenerateAdminToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"token":      token,
			"expires_in": int(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}

// AdminSession handles GET /admin/session. Reaching it through the auth
// middleware proves the token is still valid.
func (h *AuthHandler) AdminSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Session valid",
		"data": gin.H{
			"is_admin": middleware.IsAdminFromContext(c),
		},
	})
}
