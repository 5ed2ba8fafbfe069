// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/dialog"
	"github.com/allithy/storefront-backend/internal/i18n"
	"github.com/allithy/storefront-backend/internal/interfaces/http/handlers"
	"github.com/allithy/storefront-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires every API endpoint under the given group.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	languages := i18n.NewStore(redisClient, cfg.Redis.CartTTL, i18n.Language(cfg.App.DefaultLanguage))
	broker := dialog.NewBroker()

	productHandler := handlers.NewProductHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)
	orderHandler := handlers.NewOrderHandler(redisClient, languages, cfg)
	dialogHandler := handlers.NewDialogHandler(broker, cfg)
	inquiryHandler := handlers.NewInquiryHandler(cfg)
	uploadHandler := handlers.NewUploadHandler(cfg)
	authHandler := handlers.NewAuthHandler(cfg)
	languageHandler := handlers.NewLanguageHandler(languages, cfg)

	// Public catalog
	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	// Session-scoped cart
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	// Order handoff
	orders := rg.Group("/orders")
	{
		orders.POST("/whatsapp", orderHandler.SubmitWhatsAppOrder)
	}

	// Session dialog channel
	dialogs := rg.Group("/dialog")
	{
		dialogs.GET("", dialogHandler.GetActive)
		dialogs.POST("/alerts", dialogHandler.ShowAlert)
		dialogs.POST("/confirms", dialogHandler.ShowConfirm)
		dialogs.POST("/resolve", dialogHandler.Resolve)
		dialogs.DELETE("", dialogHandler.Dismiss)
	}

	// Contact form
	rg.POST("/inquiries", inquiryHandler.SubmitInquiry)

	// Language preference
	language := rg.Group("/language")
	{
		language.GET("", languageHandler.GetLanguage)
		language.PUT("", languageHandler.SetLanguage)
	}

	// Admin
	admin := rg.Group("/admin")
	{
		admin.POST("/login", authHandler.AdminLogin)

		protected := admin.Group("")
		protected.Use(middleware.AdminAuth(cfg))
		{
			protected.GET("/session", authHandler.AdminSession)

			protected.GET("/products", productHandler.ListAllProducts)
			protected.POST("/products", productHandler.CreateProduct)
			protected.PUT("/products/:id", productHandler.UpdateProduct)
			protected.DELETE("/products/:id", productHandler.DeleteProduct)
			protected.DELETE("/products/:id/permanent", productHandler.PermanentDeleteProduct)

			protected.POST("/uploads/images", uploadHandler.UploadImages)
		}
	}
}
