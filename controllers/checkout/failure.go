package checkoutControllers

import "strings"

const internationalCardsMessage = "International cards are disabled on this account. Please use the domestic test card 4111 1111 1111 1111 (CVV 123, any future expiry) or enable international cards in the Razorpay dashboard."

const genericFailureMessage = "Payment failed. Please try again."

// FailureMessage maps a gateway failure to what the customer should read.
// The known international-card rejection gets a remediation message; anything
// else passes the gateway's description through, then its reason, then a
// generic fallback.
func FailureMessage(description, reason string) string {
	if strings.Contains(strings.ToLower(description), "international cards are not supported") {
		return internationalCardsMessage
	}
	if description != "" {
		return description
	}
	if reason != "" {
		return reason
	}
	return genericFailureMessage
}
