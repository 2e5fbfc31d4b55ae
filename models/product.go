package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	Ingredients  string         `json:"ingredients"`
	Category     string         `gorm:"index" json:"category"`
	SalePrice    float64        `gorm:"not null" json:"sale_price"` // Required
	RegularPrice float64        `json:"regular_price"`
	Image        string         `json:"image"`
	Stock        int            `json:"stock"`
	Sizes        []ProductSize  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductSize is a purchasable variant (e.g. "250g", "500g") with its own pricing.
type ProductSize struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	ProductID    uint    `gorm:"index" json:"product_id"`
	Label        string  `gorm:"not null" json:"label"`
	SalePrice    float64 `json:"sale_price"`
	RegularPrice float64 `json:"regular_price"`
}
