// internal/interfaces/http/handlers/dialog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/dialog"
	"github.com/allithy/storefront-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DialogHandler exposes the per-session dialog channel. Alerts are
// fire-and-forget; confirms hold the request open until the decision
// arrives or the connection drops.
type DialogHandler struct {
	broker *dialog.Broker
	config *config.Config
}

// NewDialogHandler creates a new dialog handler
func NewDialogHandler(broker *dialog.Broker, cfg *config.Config) *DialogHandler {
	return &DialogHandler{
		broker: broker,
		config: cfg,
	}
}

// AlertRequest opens an alert dialog
type AlertRequest struct {
	Message string         `json:"message" binding:"required"`
	Variant dialog.Variant `json:"variant"`
}

// ConfirmRequest opens a confirm dialog
type ConfirmRequest struct {
	Message     string         `json:"message" binding:"required"`
	ConfirmText string         `json:"confirm_text"`
	CancelText  string         `json:"cancel_text"`
	Variant     dialog.Variant `json:"variant"`
}

// ResolveRequest settles the open dialog
type ResolveRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Decision  bool   `json:"decision"`
}

// ShowAlert handles POST /dialog/alerts
func (h *DialogHandler) ShowAlert(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	request, err := h.broker.ShowAlert(sessionID, req.Message, req.Variant)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another dialog is already open",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Alert opened",
		"data":    request,
	})
}

// ShowConfirm handles POST /dialog/confirms. The response is held until
// the decision arrives on the session's dialog channel. A dropped
// connection dismisses the dialog, which resolves the confirm to false.
func (h *DialogHandler) ShowConfirm(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	request, decision, err := h.broker.ShowConfirm(sessionID, req.Message, dialog.ConfirmOptions{
		ConfirmText: req.ConfirmText,
		CancelText:  req.CancelText,
		Variant:     req.Variant,
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another dialog is already open",
		})
		return
	}

	select {
	case confirmed := <-decision:
		c.JSON(http.StatusOK, gin.H{
			"message": "Confirm resolved",
			"data": gin.H{
				"id":        request.ID,
				"confirmed": confirmed,
			},
		})
	case <-c.Request.Context().Done():
		h.broker.Close(sessionID)
	}
}

// GetActive handles GET /dialog. The storefront polls this to learn what
// to render.
func (h *DialogHandler) GetActive(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	request := h.broker.Active(sessionID)
	if request == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "No active dialog",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Active dialog retrieved",
		"data":    request,
	})
}

// Resolve handles POST /dialog/resolve. A confirm receives the decision;
// an alert treats any resolution as acknowledgement.
func (h *DialogHandler) Resolve(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.broker.Resolve(sessionID, req.RequestID, req.Decision); err != nil {
		switch {
		case errors.Is(err, dialog.ErrNoActiveRequest):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active dialog to resolve",
			})
		case errors.Is(err, dialog.ErrRequestMismatch):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Dialog request ID does not match the active dialog",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve dialog",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dialog resolved",
	})
}

// Dismiss handles DELETE /dialog. A pending confirm resolves to false.
func (h *DialogHandler) Dismiss(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	h.broker.Close(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Dialog dismissed",
	})
}
