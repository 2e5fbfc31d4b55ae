package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filtering params
		search := c.Query("search")
		category := c.Query("category")
		limitStr := c.Query("limit")

		// Build base query
		query := db.Model(&models.Product{}).Preload("Sizes")

		// Apply category filter ("all" means no filter)
		if category != "" && category != "all" {
			query = query.Where("category = ?", category)
		}

		// Apply search filter across name, description and ingredients
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(`
				name ILIKE ? OR description ILIKE ? OR ingredients ILIKE ? OR category ILIKE ?
			`, likePattern, likePattern, likePattern, likePattern)
		}

		// Apply limit
		if limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
				query = query.Limit(n)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
		}

		var products []models.Product
		if err := query.Order("name").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
