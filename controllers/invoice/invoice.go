package invoiceControllers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"lineTotal": func(item models.OrderItem) float64 {
		return item.SalePrice * float64(item.Quantity)
	},
}).Parse(`<!doctype html><html><head><meta charset="utf-8"><title>Invoice {{.Order.OrderRef}}</title>
<style>body{font-family:Arial,sans-serif;padding:24px;color:#111}h1{font-size:20px;margin:0 0 8px}
table{width:100%;border-collapse:collapse;margin-top:12px}th,td{border:1px solid #ddd;padding:8px;font-size:12px;text-align:left}
.totals{margin-top:12px;font-size:14px}
</style></head><body>
<h1>The Powder Legacy - Invoice</h1>
<div>Order ID: <strong>{{.Order.OrderRef}}</strong></div>
<div>Payment ID: <strong>{{.PaymentID}}</strong></div>
<table><thead><tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr></thead><tbody>
{{range .Order.Items}}<tr><td>{{.ProductName}} ({{.Size}})</td><td>{{.Quantity}}</td><td>₹{{.SalePrice}}</td><td>₹{{lineTotal .}}</td></tr>
{{end}}</tbody></table>
<div class="totals">
<div>Subtotal: ₹{{.Order.Totals.Subtotal}}</div>
<div>Savings: ₹{{.Order.Totals.Savings}}</div>
<div>Delivery: ₹{{.Order.Totals.Delivery}}</div>
<div><strong>Grand Total: ₹{{.Order.Totals.Total}}</strong></div>
</div>
</body></html>`))

// Render produces the invoice HTML for an order.
func Render(order models.Order) ([]byte, error) {
	paymentID := "-"
	if order.PaymentID != nil && *order.PaymentID != "" {
		paymentID = *order.PaymentID
	}
	var buf bytes.Buffer
	err := invoiceTmpl.Execute(&buf, struct {
		Order     models.Order
		PaymentID string
	}{Order: order, PaymentID: paymentID})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DirWriter drops rendered invoices into a directory served as static files.
type DirWriter struct {
	Dir string
}

func (w DirWriter) Write(order models.Order) error {
	html, err := Render(order)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.Dir, "invoice_"+order.OrderRef+".html"), html, 0o644)
}

// GET /orders/:orderRef/invoice
func DownloadInvoiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderRef is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("order_ref = ?", ref).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		html, err := Render(order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=invoice_"+order.OrderRef+".html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
	}
}
