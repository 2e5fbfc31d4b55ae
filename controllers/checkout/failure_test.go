package checkoutControllers_test

import (
	"testing"

	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	"github.com/stretchr/testify/assert"
)

func TestFailureMessage(t *testing.T) {
	t.Run("international cards rejection maps to remediation text", func(t *testing.T) {
		msg := checkoutControllers.FailureMessage("International Cards Are Not Supported on this account", "")
		assert.Contains(t, msg, "4111 1111 1111 1111")
		assert.NotContains(t, msg, "on this account")
	})

	t.Run("description passes through", func(t *testing.T) {
		msg := checkoutControllers.FailureMessage("Card declined by issuer", "issuer_declined")
		assert.Equal(t, "Card declined by issuer", msg)
	})

	t.Run("reason used when description empty", func(t *testing.T) {
		msg := checkoutControllers.FailureMessage("", "issuer_declined")
		assert.Equal(t, "issuer_declined", msg)
	})

	t.Run("generic fallback", func(t *testing.T) {
		msg := checkoutControllers.FailureMessage("", "")
		assert.Equal(t, "Payment failed. Please try again.", msg)
	})
}
