package routes

import (
	cartControllers "github.com/Dhanasriganesh/powder/controllers/cart"
	contactControllers "github.com/Dhanasriganesh/powder/controllers/contact"
	orderControllers "github.com/Dhanasriganesh/powder/controllers/order"
	productControllers "github.com/Dhanasriganesh/powder/controllers/product"
	"github.com/Dhanasriganesh/powder/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.GET("", productControllers.GetProducts(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.PUT("/:orderRef/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderRef/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

			// websocket endpoint for real-time order updates
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
		}

		// ─────────── Contact Messages ───────────
		adminGroup.GET("/contact-messages", contactControllers.GetContactMessages(db))

		// ─────────── Session Carts ───────────
		adminGroup.GET("/session-cart/:session_id", cartControllers.GetSessionCartAdmin(db))
	}
}
