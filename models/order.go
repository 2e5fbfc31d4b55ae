package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Payment confirmed
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

// Payment methods: embedded widget vs hosted payment link.
const (
	PaymentMethodRazorpay    = "razorpay"
	PaymentMethodPaymentLink = "payment_link"
)

type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderRef       string          `gorm:"uniqueIndex;not null" json:"order_id"` // Gateway order id, or synthesized
	PaymentID      *string         `json:"payment_id"`                           // Nil until the gateway confirms a charge
	SessionID      string          `gorm:"index" json:"session_id"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Totals         OrderTotals     `gorm:"embedded" json:"totals"`
	DeliveryOption string          `json:"delivery_option"`
	Shipping       ShippingDetails `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	PaymentMethod  string          `json:"payment_method"` // "razorpay" or "payment_link"
	Status         OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Savings  float64 `json:"savings"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// ShippingDetails is the address snapshot frozen into the order.
type ShippingDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"name"`
	Size         string  `json:"size"`
	SalePrice    float64 `json:"price"`
	RegularPrice float64 `json:"regular_price"`
	Quantity     int     `json:"quantity"`
}
