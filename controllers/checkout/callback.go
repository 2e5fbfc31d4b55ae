package checkoutControllers

import (
	"net/http"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
)

// GET /payment/callback
// Entry point for shoppers returning from the hosted payment page. The
// gateway-specific query parameters are tried first, generic ones as a
// fallback; an order ref is synthesized when neither is present. The charge
// may already be captured, so a failure here is terminal: the shopper is told
// to contact support rather than retry.
func PaymentCallbackHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		paymentID := c.Query("razorpay_payment_id")
		if paymentID == "" {
			paymentID = c.Query("payment_id")
		}
		orderRef := c.Query("razorpay_order_id")
		if orderRef == "" {
			orderRef = c.Query("order_id")
		}
		if orderRef == "" {
			orderRef = SynthesizeOrderRef()
		}

		order, err := svc.Record(id, paymentID, orderRef, models.PaymentMethodPaymentLink)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to record payment. You can contact support if funds were captured.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Payment confirmed. Redirecting...",
			"order_id":   order.OrderRef,
			"payment_id": order.PaymentID,
			"redirect":   "/order-success",
		})
	}
}
