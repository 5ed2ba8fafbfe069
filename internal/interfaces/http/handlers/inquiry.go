// internal/interfaces/http/handlers/inquiry.go
package handlers

import (
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/domain/inquiry"
	"github.com/allithy/storefront-backend/internal/pkg/email"
	"github.com/gin-gonic/gin"
)

// InquiryHandler handles contact form submissions
type InquiryHandler struct {
	inquiryService *inquiry.Service
	config         *config.Config
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(cfg *config.Config) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiry.NewService(email.NewEmailService(cfg), cfg),
		config:         cfg,
	}
}

// SubmitInquiry handles POST /inquiries
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req inquiry.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.inquiryService.Send(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send inquiry",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry sent successfully",
	})
}
