// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/domain/cart"
	"github.com/allithy/storefront-backend/internal/domain/order"
	"github.com/allithy/storefront-backend/internal/i18n"
	"github.com/allithy/storefront-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// OrderHandler handles the WhatsApp order handoff
type OrderHandler struct {
	orderService *order.Service
	languages    *i18n.Store
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(redisClient *redis.Client, languages *i18n.Store, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orderService: order.NewService(cart.NewStore(redisClient, cfg), cfg),
		languages:    languages,
		config:       cfg,
	}
}

// SubmitWhatsAppOrder handles POST /orders/whatsapp. The cart is
// rendered into a localized message, the wa.me link is returned, and the
// cart is cleared whether or not the customer follows the link.
func (h *OrderHandler) SubmitWhatsAppOrder(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	lang := h.languages.Current(c.Request.Context(), sessionID)

	result, err := h.orderService.Submit(c.Request.Context(), sessionID, lang)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order submitted successfully",
		"data":    result,
	})
}
