package routes

import (
	cartControllers "github.com/Dhanasriganesh/powder/controllers/cart"
	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	favoriteControllers "github.com/Dhanasriganesh/powder/controllers/favorite"
	invoiceControllers "github.com/Dhanasriganesh/powder/controllers/invoice"
	orderControllers "github.com/Dhanasriganesh/powder/controllers/order"
	"github.com/Dhanasriganesh/powder/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupSessionRoutes registers all shopper endpoints. Requires a session token.
func SetupSessionRoutes(r *gin.Engine, db *gorm.DB, svc *checkoutControllers.Service) {
	sessionGroup := r.Group("/")
	sessionGroup.Use(middleware.ValidateSession)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))                       // GET /cart
			cartGroup.POST("", cartControllers.UpdateCartItem(db))               // POST /cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /cart/:product_id?size=
			cartGroup.DELETE("", cartControllers.ClearCart(db))                  // DELETE /cart
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := sessionGroup.Group("/checkout")
		{
			checkoutGroup.PUT("/delivery", checkoutControllers.SaveDeliveryInfoHandler(db))
			checkoutGroup.PUT("/address", checkoutControllers.SaveShippingAddressHandler(db))
			checkoutGroup.GET("/session", checkoutControllers.GetCheckoutSessionHandler(db))
			checkoutGroup.GET("/amount", checkoutControllers.ComputeAmountHandler(svc))
			checkoutGroup.POST("/initiate", checkoutControllers.InitiatePaymentHandler(svc))
			checkoutGroup.POST("/confirm", checkoutControllers.ConfirmPaymentHandler(svc))
			checkoutGroup.POST("/failure", checkoutControllers.PaymentFailureHandler())
			checkoutGroup.GET("/payment-page", checkoutControllers.HostedPaymentPageHandler(svc))
		}

		// ──────────────── Orders ────────────────
		sessionGroup.GET("/orders", orderControllers.GetSessionOrdersHandler(db))
		sessionGroup.GET("/orders/:orderRef", orderControllers.GetOrderByRefHandler(db))
		sessionGroup.GET("/orders/:orderRef/invoice", invoiceControllers.DownloadInvoiceHandler(db))

		// ──────────────── Favorites ────────────────
		sessionGroup.POST("/favorites", favoriteControllers.ToggleFavorite(db))
		sessionGroup.GET("/favorites", favoriteControllers.GetFavorites(db))
	}
}
