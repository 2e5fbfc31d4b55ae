package checkoutControllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	cartControllers "github.com/Dhanasriganesh/powder/controllers/cart"
	"github.com/Dhanasriganesh/powder/models"
)

const storeName = "The Powder Legacy"

// Payable amounts below one rupee are rejected before any gateway call.
const minPayablePaise = 100

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingDeliveryInfo  = errors.New("please complete delivery information first")
	ErrAmountBelowMinimum   = errors.New("order amount must be at least ₹1.00")
	ErrPaymentPageNotConfig = errors.New("payment page URL not configured")
)

// IsValidationError reports whether err should block the attempt with a 400
// rather than a gateway/server failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrMissingDeliveryInfo) ||
		errors.Is(err, ErrAmountBelowMinimum) ||
		errors.Is(err, ErrPaymentPageNotConfig)
}

// InvoiceWriter produces the downloadable invoice artifact for an order.
// Failures are never allowed to block checkout completion.
type InvoiceWriter interface {
	Write(order models.Order) error
}

// Service drives the payment attempt: it validates preconditions, asks the
// gateway to set up the charge, and on confirmation assembles the order,
// persists it, and clears the cart and checkout session.
type Service struct {
	Carts    CartStore
	Sessions SessionStore
	Orders   OrderStore
	Gateway  Gateway

	// PaymentPageURL is the hosted checkout page, empty when not configured.
	PaymentPageURL string
	// Invoices is optional; nil disables invoice generation.
	Invoices InvoiceWriter
	// OnOrderSaved is optional; called after every successful persistence.
	OnOrderSaved func(order models.Order)
}

// checkoutState is everything the orchestrator reads before a payment attempt.
type checkoutState struct {
	items    []models.CartItem
	delivery *models.DeliveryInfo
	address  *models.ShippingAddress
	subtotal float64
	savings  float64
}

func (st *checkoutState) deliveryFee() float64 {
	if st.delivery == nil {
		return 0
	}
	return st.delivery.Price
}

// PayableAmountPaise converts a rupee total to integer paise.
func PayableAmountPaise(subtotal, deliveryFee float64) int64 {
	return int64(math.Round((subtotal + deliveryFee) * 100))
}

// SynthesizeOrderRef mints a reference for orders the gateway never named.
func SynthesizeOrderRef() string {
	return fmt.Sprintf("order_%d", time.Now().UnixMilli())
}

func (s *Service) loadState(sessionID string) (*checkoutState, error) {
	items, err := s.Carts.Items(sessionID)
	if err != nil {
		return nil, err
	}
	delivery, err := s.Sessions.Delivery(sessionID)
	if err != nil {
		return nil, err
	}
	address, err := s.Sessions.Address(sessionID)
	if err != nil {
		return nil, err
	}
	subtotal, savings := cartControllers.Totals(items)
	return &checkoutState{
		items:    items,
		delivery: delivery,
		address:  address,
		subtotal: subtotal,
		savings:  savings,
	}, nil
}

// validate enforces the checkout preconditions: non-empty cart, delivery info
// saved, payable amount at least the minimum.
func (s *Service) validate(st *checkoutState) (int64, error) {
	if len(st.items) == 0 {
		return 0, ErrEmptyCart
	}
	if st.delivery == nil {
		return 0, ErrMissingDeliveryInfo
	}
	amount := PayableAmountPaise(st.subtotal, st.deliveryFee())
	if amount < minPayablePaise {
		return 0, ErrAmountBelowMinimum
	}
	return amount, nil
}

// ComputePayableAmount returns the amount a payment attempt would charge, in
// paise, after running the same validations InitiatePayment runs.
func (s *Service) ComputePayableAmount(sessionID string) (int64, error) {
	st, err := s.loadState(sessionID)
	if err != nil {
		return 0, err
	}
	return s.validate(st)
}

// PaymentOptions is the widget configuration handed back to the storefront.
type PaymentOptions struct {
	Key         string            `json:"key"`
	AmountPaise int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OrderRef    string            `json:"order_id"`
	Prefill     PaymentPrefill    `json:"prefill"`
	Notes       map[string]string `json:"notes,omitempty"`
	Retry       PaymentRetry      `json:"retry"`
	Theme       PaymentTheme      `json:"theme"`
}

type PaymentPrefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type PaymentRetry struct {
	Enabled  bool `json:"enabled"`
	MaxCount int  `json:"max_count"`
}

type PaymentTheme struct {
	Color string `json:"color"`
}

// InitiatePayment validates the checkout state and registers the attempt with
// the gateway. Nothing local changes; a dismissed or failed widget needs no
// cleanup and re-initiating is safe.
func (s *Service) InitiatePayment(sessionID string) (*PaymentOptions, error) {
	st, err := s.loadState(sessionID)
	if err != nil {
		return nil, err
	}
	amount, err := s.validate(st)
	if err != nil {
		return nil, err
	}

	notes := map[string]string{"session_id": sessionID}
	if st.address != nil && st.address.Address != "" {
		notes["address"] = st.address.Address
	}

	intent, err := s.Gateway.CreateCheckout(CheckoutRequest{
		AmountPaise: amount,
		Currency:    "INR",
		Receipt:     sessionID,
		Notes:       notes,
	})
	if err != nil {
		return nil, err
	}

	opts := &PaymentOptions{
		Key:         s.Gateway.KeyID(),
		AmountPaise: amount,
		Currency:    "INR",
		Name:        storeName,
		Description: "Order Payment",
		OrderRef:    intent.OrderRef,
		Notes:       notes,
		Retry:       PaymentRetry{Enabled: true, MaxCount: 1},
		Theme:       PaymentTheme{Color: "#15803d"},
	}
	if st.address != nil {
		opts.Prefill = PaymentPrefill{
			Name:    st.address.FullName(),
			Email:   st.address.Email,
			Contact: st.address.Phone,
		}
	}
	return opts, nil
}

// HostedPaymentPageURL builds the redirect URL for the hosted checkout page,
// carrying prefill fields and the amount in whole rupees.
func (s *Service) HostedPaymentPageURL(sessionID string) (string, error) {
	st, err := s.loadState(sessionID)
	if err != nil {
		return "", err
	}
	amount, err := s.validate(st)
	if err != nil {
		return "", err
	}
	if s.PaymentPageURL == "" {
		return "", ErrPaymentPageNotConfig
	}

	params := url.Values{}
	if st.address != nil {
		if st.address.Email != "" {
			params.Set("prefill[email]", st.address.Email)
		}
		if st.address.Phone != "" {
			params.Set("prefill[contact]", st.address.Phone)
		}
		if name := st.address.FullName(); name != "" {
			params.Set("prefill[name]", name)
		}
	}
	major := int64(math.Round(float64(amount) / 100))
	if major < 1 {
		major = 1
	}
	params.Set("amount", strconv.FormatInt(major, 10))

	sep := "?"
	if strings.Contains(s.PaymentPageURL, "?") {
		sep = "&"
	}
	return s.PaymentPageURL + sep + params.Encode(), nil
}

// assemble builds the order record from the current cart and checkout
// session. Missing delivery info or address become zero-valued fields, not
// errors: by the time this runs the charge already happened.
func (s *Service) assemble(sessionID, paymentID, orderRef, method string) (*models.Order, error) {
	st, err := s.loadState(sessionID)
	if err != nil {
		return nil, err
	}
	if orderRef == "" {
		orderRef = SynthesizeOrderRef()
	}

	order := &models.Order{
		OrderRef:      orderRef,
		SessionID:     sessionID,
		PaymentMethod: method,
		Status:        models.OrderStatusConfirmed,
		PaymentStatus: models.PaymentStatusPending,
		Totals: models.OrderTotals{
			Subtotal: st.subtotal,
			Savings:  st.savings,
			Delivery: st.deliveryFee(),
			Total:    st.subtotal + st.deliveryFee(),
		},
	}
	if paymentID != "" {
		order.PaymentID = &paymentID
		order.PaymentStatus = models.PaymentStatusPaid
	}
	if st.delivery != nil {
		order.DeliveryOption = st.delivery.Option
	}
	if st.address != nil {
		order.Shipping = models.ShippingDetails{
			Name:       st.address.FullName(),
			Email:      st.address.Email,
			Phone:      st.address.Phone,
			Address:    st.address.Address,
			City:       st.address.City,
			State:      st.address.State,
			PostalCode: st.address.PostalCode,
		}
	}
	for _, item := range st.items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Size:         item.Size,
			SalePrice:    item.SalePrice,
			RegularPrice: item.RegularPrice,
			Quantity:     item.Quantity,
		})
	}
	return order, nil
}

// clear empties the cart and checkout session. Runs after persistence was
// attempted; failures are logged, the customer is past the point of caring.
func (s *Service) clear(sessionID string) {
	if err := s.Carts.Clear(sessionID); err != nil {
		log.Printf("failed to clear cart for %s: %v", sessionID, err)
	}
	if err := s.Sessions.Clear(sessionID); err != nil {
		log.Printf("failed to clear checkout session for %s: %v", sessionID, err)
	}
}

func (s *Service) writeInvoice(order models.Order) {
	if s.Invoices == nil {
		return
	}
	if err := s.Invoices.Write(order); err != nil {
		log.Printf("failed to write invoice for %s: %v", order.OrderRef, err)
	}
}

// ConfirmResult reports what the widget success path managed to do.
type ConfirmResult struct {
	Order     *models.Order
	Persisted bool
}

// ConfirmPayment is the widget success callback. Persistence and the invoice
// are best-effort: a paying customer is never stranded on a storage error,
// so the cart and checkout session are cleared and the flow reports success
// regardless. The trade-off is an order the customer saw confirmed without a
// durable record; reconciliation has to happen out-of-band.
func (s *Service) ConfirmPayment(sessionID, paymentID, orderRef string) *ConfirmResult {
	result := &ConfirmResult{}

	order, err := s.assemble(sessionID, paymentID, orderRef, models.PaymentMethodRazorpay)
	if err != nil {
		log.Printf("failed to assemble order for %s: %v", sessionID, err)
		s.clear(sessionID)
		return result
	}

	saved, err := s.Orders.Save(order)
	if err != nil {
		log.Printf("failed to persist order %s: %v", order.OrderRef, err)
		result.Order = order
	} else {
		result.Order = saved
		result.Persisted = true
		s.writeInvoice(*saved)
		if s.OnOrderSaved != nil {
			s.OnOrderSaved(*saved)
		}
	}

	s.clear(sessionID)
	return result
}

// Record is the redirect/webhook path: the charge may already be captured,
// so any failure here is terminal and surfaces to the caller instead of
// being swallowed. Retrying with the same ref stays safe because Save is an
// idempotent upsert.
func (s *Service) Record(sessionID, paymentID, orderRef, method string) (*models.Order, error) {
	order, err := s.assemble(sessionID, paymentID, orderRef, method)
	if err != nil {
		return nil, err
	}

	saved, err := s.Orders.Save(order)
	if err != nil {
		return nil, err
	}

	s.writeInvoice(*saved)
	if s.OnOrderSaved != nil {
		s.OnOrderSaved(*saved)
	}
	s.clear(sessionID)
	return saved, nil
}
