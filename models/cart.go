package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey"`
	SessionID string     `gorm:"uniqueIndex"`                                   // Enforces ONE cart per shopper session
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"-"` // Faster queries
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"name"`
	Size         string    `json:"size"` // Chosen variant; (product_id, size) is unique within a cart
	SalePrice    float64   `json:"price"`
	RegularPrice float64   `json:"regular_price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
