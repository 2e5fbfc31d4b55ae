package models

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"index:idx_fav_session_product,unique" json:"-"`
	ProductID uint      `gorm:"index:idx_fav_session_product,unique" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
