package checkoutControllers

import "github.com/Dhanasriganesh/powder/models"

// Gateway is the payment provider capability the orchestrator depends on.
// The production implementation talks to Razorpay; tests substitute a fake.
type Gateway interface {
	// KeyID is the publishable key the storefront hands to the widget.
	KeyID() string
	// CreateCheckout registers a payment attempt with the provider and
	// returns the order reference the widget must be opened with.
	CreateCheckout(req CheckoutRequest) (*CheckoutIntent, error)
}

// CheckoutRequest carries what the provider needs to set up a payment.
type CheckoutRequest struct {
	AmountPaise int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// CheckoutIntent is the provider's handle for the attempt.
type CheckoutIntent struct {
	OrderRef string
}

// CartStore reads and clears the session cart.
type CartStore interface {
	Items(sessionID string) ([]models.CartItem, error)
	Clear(sessionID string) error
}

// SessionStore reads and clears the checkout session (delivery info and
// shipping address saved between checkout steps). Readers return nil when
// the part has not been saved yet; that is not an error.
type SessionStore interface {
	Delivery(sessionID string) (*models.DeliveryInfo, error)
	Address(sessionID string) (*models.ShippingAddress, error)
	Clear(sessionID string) error
}

// OrderStore persists assembled orders. Save is an idempotent upsert keyed
// by order ref: a retry with the same ref merges, it never duplicates.
type OrderStore interface {
	Save(order *models.Order) (*models.Order, error)
}
