package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Ingredients = input.Ingredients
		product.Category = input.Category
		product.SalePrice = input.SalePrice
		product.RegularPrice = input.RegularPrice
		product.Image = input.Image
		product.Stock = input.Stock

		err = db.Transaction(func(tx *gorm.DB) error {
			// Replace size variants wholesale
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error; err != nil {
				return err
			}
			product.Sizes = nil
			for _, s := range input.Sizes {
				product.Sizes = append(product.Sizes, models.ProductSize{
					ProductID:    product.ID,
					Label:        s.Label,
					SalePrice:    s.SalePrice,
					RegularPrice: s.RegularPrice,
				})
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
