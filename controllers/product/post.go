package productcontroller

import (
	"net/http"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	Ingredients  string      `json:"ingredients"`
	Category     string      `json:"category" binding:"required"`
	SalePrice    float64     `json:"sale_price" binding:"required"`
	RegularPrice float64     `json:"regular_price"`
	Image        string      `json:"image"`
	Stock        int         `json:"stock"`
	Sizes        []SizeInput `json:"sizes"`
}

type SizeInput struct {
	Label        string  `json:"label" binding:"required"`
	SalePrice    float64 `json:"sale_price"`
	RegularPrice float64 `json:"regular_price"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:         input.Name,
			Description:  input.Description,
			Ingredients:  input.Ingredients,
			Category:     input.Category,
			SalePrice:    input.SalePrice,
			RegularPrice: input.RegularPrice,
			Image:        input.Image,
			Stock:        input.Stock,
		}
		for _, s := range input.Sizes {
			product.Sizes = append(product.Sizes, models.ProductSize{
				Label:        s.Label,
				SalePrice:    s.SalePrice,
				RegularPrice: s.RegularPrice,
			})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
