package checkoutControllers

import (
	"net/http"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GormSessionStore keeps the checkout session (delivery info and shipping
// address) in the database, one row of each per shopper session.
type GormSessionStore struct {
	DB *gorm.DB
}

func (s GormSessionStore) Delivery(sessionID string) (*models.DeliveryInfo, error) {
	var info models.DeliveryInfo
	if err := s.DB.Where("session_id = ?", sessionID).First(&info).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (s GormSessionStore) Address(sessionID string) (*models.ShippingAddress, error) {
	var addr models.ShippingAddress
	if err := s.DB.Where("session_id = ?", sessionID).First(&addr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &addr, nil
}

func (s GormSessionStore) Clear(sessionID string) error {
	if err := s.DB.Where("session_id = ?", sessionID).Delete(&models.DeliveryInfo{}).Error; err != nil {
		return err
	}
	return s.DB.Where("session_id = ?", sessionID).Delete(&models.ShippingAddress{}).Error
}

type DeliveryInfoInput struct {
	Option string  `json:"delivery_option" binding:"required"`
	Price  float64 `json:"delivery_price"`
}

type ShippingAddressInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// PUT /checkout/delivery
func SaveDeliveryInfoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var input DeliveryInfoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var info models.DeliveryInfo
		err := db.Where("session_id = ?", sessionID).First(&info).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery info"})
				return
			}
			info = models.DeliveryInfo{SessionID: sessionID}
		}
		info.Option = input.Option
		info.Price = input.Price

		if err := db.Save(&info).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save delivery info"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// PUT /checkout/address
func SaveShippingAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var input ShippingAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var addr models.ShippingAddress
		err := db.Where("session_id = ?", sessionID).First(&addr).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping address"})
				return
			}
			addr = models.ShippingAddress{SessionID: sessionID}
		}
		addr.FirstName = input.FirstName
		addr.LastName = input.LastName
		addr.Email = input.Email
		addr.Phone = input.Phone
		addr.Address = input.Address
		addr.City = input.City
		addr.State = input.State
		addr.PostalCode = input.PostalCode

		if err := db.Save(&addr).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipping address"})
			return
		}
		c.JSON(http.StatusOK, addr)
	}
}

// GET /checkout/session
func GetCheckoutSessionHandler(db *gorm.DB) gin.HandlerFunc {
	store := GormSessionStore{DB: db}
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		delivery, err := store.Delivery(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery info"})
			return
		}
		address, err := store.Address(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"delivery_info":    delivery,
			"shipping_address": address,
		})
	}
}
