// internal/interfaces/http/handlers/language.go
package handlers

import (
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/i18n"
	"github.com/allithy/storefront-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// LanguageHandler handles the per-session language preference
type LanguageHandler struct {
	languages *i18n.Store
	config    *config.Config
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(languages *i18n.Store, cfg *config.Config) *LanguageHandler {
	return &LanguageHandler{
		languages: languages,
		config:    cfg,
	}
}

// SetLanguageRequest selects the session language
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

func languagePayload(lang i18n.Language) gin.H {
	return gin.H{
		"language":  lang,
		"direction": lang.Direction(),
		"strings":   i18n.Strings(lang),
	}
}

// GetLanguage handles GET /language. The payload carries the resolved
// language, its text direction and the UI string catalog so the
// storefront renders in one round trip.
func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	lang := h.languages.Current(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Language retrieved successfully",
		"data":    languagePayload(lang),
	})
}

// SetLanguage handles PUT /language
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	lang, err := i18n.Parse(req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported language",
		})
		return
	}

	if err := h.languages.SetLanguage(c.Request.Context(), sessionID, lang); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store language preference",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Language updated successfully",
		"data":    languagePayload(lang),
	})
}
