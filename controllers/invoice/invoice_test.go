package invoiceControllers_test

import (
	"testing"

	invoiceControllers "github.com/Dhanasriganesh/powder/controllers/invoice"
	"github.com/Dhanasriganesh/powder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() models.Order {
	paymentID := "pay_123"
	return models.Order{
		OrderRef:  "order_abc123",
		PaymentID: &paymentID,
		Items: []models.OrderItem{
			{ProductName: "Sandalwood Bath Powder", Size: "250g", SalePrice: 200, Quantity: 2},
		},
		Totals: models.OrderTotals{Subtotal: 400, Savings: 100, Delivery: 50, Total: 450},
	}
}

func TestRender(t *testing.T) {
	html, err := invoiceControllers.Render(testOrder())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "order_abc123")
	assert.Contains(t, out, "pay_123")
	assert.Contains(t, out, "Sandalwood Bath Powder (250g)")
	assert.Contains(t, out, "₹400")
	assert.Contains(t, out, "Grand Total: ₹450")
}

func TestRenderWithoutPaymentID(t *testing.T) {
	order := testOrder()
	order.PaymentID = nil

	html, err := invoiceControllers.Render(order)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Payment ID: <strong>-</strong>")
}
