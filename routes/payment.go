package routes

import (
	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	razorpayControllers "github.com/Dhanasriganesh/powder/controllers/razorpay"
	"github.com/Dhanasriganesh/powder/middleware"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(r *gin.Engine, svc *checkoutControllers.Service) {
	payment := r.Group("/payment")
	{
		// Redirect landing for hosted payment pages; session-bound
		payment.GET("/callback",
			middleware.ValidateSession,
			checkoutControllers.PaymentCallbackHandler(svc),
		)

		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.RazorpayWebhookAuth(),
			razorpayControllers.WebhookHandler(svc),
		)
	}
}
