package cartControllers

import (
	"github.com/Dhanasriganesh/powder/models"
	"gorm.io/gorm"
)

// Store gives the checkout orchestrator read/clear access to session carts
// without handing it the whole database.
type Store struct {
	DB *gorm.DB
}

func (s Store) Items(sessionID string) ([]models.CartItem, error) {
	var cart models.Cart
	if err := s.DB.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return cart.Items, nil
}

func (s Store) Clear(sessionID string) error {
	var cart models.Cart
	if err := s.DB.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return s.DB.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}
