package favoriteControllers

import (
	"net/http"
	"time"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// POST /favorites
// Toggles the product in the session's favorites.
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var fav models.Favorite
		err := db.Where("session_id = ? AND product_id = ?", sessionID, input.ProductID).First(&fav).Error
		if err == nil {
			if err := db.Delete(&fav).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"favorited": false})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite"})
			return
		}

		fav = models.Favorite{
			SessionID: sessionID,
			ProductID: input.ProductID,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorited": true})
	}
}

// GET /favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var favorites []models.Favorite
		if err := db.Where("session_id = ?", sessionID).Order("created_at DESC").Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}
