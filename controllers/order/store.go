package orderControllers

import (
	"time"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateOrderRef synthesizes a unique reference for orders the gateway did
// not assign one to.
// Example: 20250908130500-<uuid4>
func GenerateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Store is the order persistence gateway.
type Store struct {
	DB *gorm.DB
}

// Save upserts the order keyed by its ref. A second write with the same ref
// merges into the existing record instead of inserting a duplicate: set
// fields overlay the stored ones, unset fields (nil payment id, empty item
// list) leave the stored values alone. The creation timestamp is stamped on
// first write and never moves.
func (s Store) Save(order *models.Order) (*models.Order, error) {
	if order.OrderRef == "" {
		order.OrderRef = GenerateOrderRef()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.Preload("Items").Where("order_ref = ?", order.OrderRef).First(&existing).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return tx.Create(order).Error
			}
			return err
		}

		// Merge into the existing record
		order.ID = existing.ID
		order.CreatedAt = existing.CreatedAt
		if order.PaymentID == nil {
			order.PaymentID = existing.PaymentID
		}
		if len(order.Items) == 0 {
			order.Items = existing.Items
			return tx.Omit("Items").Save(order).Error
		}

		if err := tx.Where("order_id = ?", existing.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = existing.ID
		}
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
