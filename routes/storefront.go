package routes

import (
	contactControllers "github.com/Dhanasriganesh/powder/controllers/contact"
	productControllers "github.com/Dhanasriganesh/powder/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public catalog and contact endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))                    // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(db))             // GET /products/:id
	r.GET("/products/:id/related", productControllers.GetRelatedProducts(db)) // GET /products/:id/related

	r.POST("/contact", contactControllers.SaveContactMessage(db))
}
