package models

import "time"

// DeliveryInfo is the shipping method chosen during checkout. It lives outside
// the cart so it survives navigation between checkout steps, and is deleted
// once an order is recorded.
type DeliveryInfo struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SessionID string    `gorm:"uniqueIndex" json:"-"`
	Option    string    `json:"delivery_option"`
	Price     float64   `json:"delivery_price"`
	UpdatedAt time.Time `json:"-"`
}

// ShippingAddress is the recipient contact saved during checkout, keyed by
// shopper session like DeliveryInfo.
type ShippingAddress struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	SessionID  string    `gorm:"uniqueIndex" json:"-"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	UpdatedAt  time.Time `json:"-"`
}

// FullName joins the name parts, trimming when either side is empty.
func (a ShippingAddress) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
