package routes

import (
	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Storefront,
// Session, Payment, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, svc *checkoutControllers.Service) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public storefront routes (catalog, contact)
	SetupStorefrontRoutes(r, db)

	// Shopper routes (session-token protected)
	SetupSessionRoutes(r, db, svc)

	// Payment callback + webhook routes
	SetupPaymentRoutes(r, svc)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, db)
}
