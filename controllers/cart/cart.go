package cartControllers

import (
	"net/http"
	"time"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// Totals computes the cart subtotal and savings. Savings never go negative
// per line even when a sale price exceeds the regular price.
func Totals(items []models.CartItem) (subtotal, savings float64) {
	for _, item := range items {
		subtotal += item.SalePrice * float64(item.Quantity)
		if item.RegularPrice > item.SalePrice {
			savings += (item.RegularPrice - item.SalePrice) * float64(item.Quantity)
		}
	}
	return subtotal, savings
}

// POST /cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.Preload("Sizes").First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		// Resolve variant pricing; fall back to product-level pricing when the
		// size is not a listed variant
		salePrice := product.SalePrice
		regularPrice := product.RegularPrice
		for _, s := range product.Sizes {
			if s.Label == input.Size {
				salePrice = s.SalePrice
				regularPrice = s.RegularPrice
				break
			}
		}

		// Check if the session has a cart
		var cart models.Cart
		if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				cart = models.Cart{SessionID: sessionID}
				if err := db.Create(&cart).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
					return
				}
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
		}

		// Check if the (product, size) pair already exists in the cart
		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ? AND size = ?", cart.CartID, input.ProductID, input.Size).First(&item).Error
		if err != nil {
			// New cart item
			if err == gorm.ErrRecordNotFound {
				newItem := models.CartItem{
					CartID:       cart.CartID,
					ProductID:    product.ID,
					ProductName:  product.Name,
					Size:         input.Size,
					SalePrice:    salePrice,
					RegularPrice: regularPrice,
					Quantity:     input.Quantity,
					AddedAt:      time.Now(),
				}
				if err := db.Create(&newItem).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
					return
				}
				c.JSON(http.StatusCreated, newItem)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		// Update existing cart item quantity and time
		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/:product_id?size=
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)
		productID := c.Param("product_id")
		size := c.Query("size")

		// Get the session's cart
		var cart models.Cart
		if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		// Attempt to delete the cart item
		query := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID)
		if size != "" {
			query = query.Where("size = ?", size)
		}
		result := query.Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		// Check if item was actually deleted
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var cart models.Cart
		if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var cart models.Cart
		if err := db.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "subtotal": 0, "savings": 0})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		subtotal, savings := Totals(cart.Items)
		c.JSON(http.StatusOK, gin.H{
			"items":    cart.Items,
			"subtotal": subtotal,
			"savings":  savings,
		})
	}
}

// GET /admin/session-cart/:session_id
func GetSessionCartAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart.Items)
	}
}
