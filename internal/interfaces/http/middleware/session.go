// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// Session resolves the browser session ID that scopes the cart, the
// language preference and the dialog channel. The ID comes from the
// X-Session-ID header or the session cookie; first-time visitors get a
// fresh UUID minted and set as a cookie.
func Session(cfg *config.Config) gin.HandlerFunc {
	secure := cfg.IsProduction()

	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookieName); err == nil {
				sessionID = cookie
			}
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookieName, sessionID, int(cfg.Redis.CartTTL.Seconds()), "/", "", secure, true)
		}

		c.Set("session_id", sessionID)
		c.Header("X-Session-ID", sessionID)

		c.Next()
	}
}

// GetSessionID extracts the session ID from the gin context
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok && id != ""
}
