package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func sessionID(c *gin.Context) (string, bool) {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return sessionIDVal.(string), true
}

// GET /checkout/amount
func ComputeAmountHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		amount, err := svc.ComputePayableAmount(id)
		if err != nil {
			if IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute amount"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"amount": amount, "currency": "INR"})
	}
}

// POST /checkout/initiate
func InitiatePaymentHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		opts, err := svc.InitiatePayment(id)
		if err != nil {
			if IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// Gateway unreachable or rejected the order create
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, opts)
	}
}

type ConfirmPaymentRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderRef  string `json:"razorpay_order_id"`
}

// POST /checkout/confirm
// Widget success callback. The response always reports success; whether the
// record made it to storage is in `persisted`.
func ConfirmPaymentHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		var req ConfirmPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := svc.ConfirmPayment(id, req.PaymentID, req.OrderRef)

		resp := gin.H{
			"message":   "Payment successful",
			"persisted": result.Persisted,
		}
		if result.Order != nil {
			resp["order_id"] = result.Order.OrderRef
			resp["payment_id"] = result.Order.PaymentID
			if result.Persisted {
				resp["invoice_url"] = "/orders/" + result.Order.OrderRef + "/invoice"
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

type PaymentFailureRequest struct {
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// POST /checkout/failure
// Widget failure callback: nothing is persisted, the attempt stays retryable.
// The response carries the customer-facing message for the gateway's reason.
func PaymentFailureHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentFailureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": FailureMessage(req.Description, req.Reason)})
	}
}

// GET /checkout/payment-page
func HostedPaymentPageHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		pageURL, err := svc.HostedPaymentPageURL(id)
		if err != nil {
			if IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build payment page URL"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": pageURL})
	}
}
