package razorpayControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
)

// WebhookHandler records orders for charges confirmed server-to-server.
// The session id travels in the order notes set at checkout creation; without
// it there is no cart to assemble from.
func WebhookHandler(svc *checkoutControllers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read webhook body"})
			return
		}

		var event WebhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse webhook payload"})
			return
		}

		fmt.Println("Received Razorpay webhook:", event.Event)

		if event.Event != "payment.captured" {
			c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
			return
		}

		payment := event.Payload.Payment.Entity
		sessionID := payment.Notes["session_id"]
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing session_id in payment notes"})
			return
		}

		if _, err := svc.Record(sessionID, payment.ID, payment.OrderID, models.PaymentMethodRazorpay); err != nil {
			fmt.Println("Failed to record order for session:", sessionID, "error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record order", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order recorded successfully"})
	}
}
