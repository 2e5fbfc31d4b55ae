package orderControllers

import (
	"net/http"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row: one row per order item
		headers := []string{
			"OrderRef", "PaymentID", "PaymentMethod", "Status", "PaymentStatus",
			"Item", "Size", "Quantity", "Price", "LineTotal",
			"Subtotal", "Savings", "Delivery", "Total",
			"Recipient", "Email", "Phone", "City", "PostalCode", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			paymentID := ""
			if o.PaymentID != nil {
				paymentID = *o.PaymentID
			}
			for _, item := range o.Items {
				row := sheet.AddRow()

				row.AddCell().SetValue(o.OrderRef)
				row.AddCell().SetValue(paymentID)
				row.AddCell().SetValue(o.PaymentMethod)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(string(o.PaymentStatus))
				row.AddCell().SetValue(item.ProductName)
				row.AddCell().SetValue(item.Size)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.SalePrice)
				row.AddCell().SetValue(item.SalePrice * float64(item.Quantity))
				row.AddCell().SetValue(o.Totals.Subtotal)
				row.AddCell().SetValue(o.Totals.Savings)
				row.AddCell().SetValue(o.Totals.Delivery)
				row.AddCell().SetValue(o.Totals.Total)
				row.AddCell().SetValue(o.Shipping.Name)
				row.AddCell().SetValue(o.Shipping.Email)
				row.AddCell().SetValue(o.Shipping.Phone)
				row.AddCell().SetValue(o.Shipping.City)
				row.AddCell().SetValue(o.Shipping.PostalCode)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
