package razorpayControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(apiURL string) *Client {
	return &Client{
		keyID:      "rzp_test_key",
		keySecret:  "secret",
		apiURL:     apiURL,
		httpClient: &http.Client{},
	}
}

func TestCreateCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(45000), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_abc123","status":"created"}`))
	}))
	defer srv.Close()

	cl := testClient(srv.URL)
	intent, err := cl.CreateCheckout(checkoutControllers.CheckoutRequest{
		AmountPaise: 45000,
		Currency:    "INR",
		Receipt:     "sess_1",
		Notes:       map[string]string{"session_id": "sess_1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order_abc123", intent.OrderRef)
}

func TestCreateCheckoutAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`))
	}))
	defer srv.Close()

	cl := testClient(srv.URL)
	_, err := cl.CreateCheckout(checkoutControllers.CheckoutRequest{AmountPaise: 1, Currency: "INR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "razorpay API error (400)")
}

func TestCreateCheckoutMissingConfig(t *testing.T) {
	cl := &Client{httpClient: &http.Client{}}
	_, err := cl.CreateCheckout(checkoutControllers.CheckoutRequest{AmountPaise: 100, Currency: "INR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration missing")
}

func TestCreateCheckoutEmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cl := testClient(srv.URL)
	_, err := cl.CreateCheckout(checkoutControllers.CheckoutRequest{AmountPaise: 100, Currency: "INR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty order id")
}

func TestWebhookEventParsing(t *testing.T) {
	payload := `{
		"event": "payment.captured",
		"payload": {"payment": {"entity": {
			"id": "pay_123",
			"order_id": "order_abc123",
			"notes": {"session_id": "sess_1"}
		}}}
	}`

	var event WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))
	assert.Equal(t, "payment.captured", event.Event)
	assert.Equal(t, "pay_123", event.Payload.Payment.Entity.ID)
	assert.Equal(t, "order_abc123", event.Payload.Payment.Entity.OrderID)
	assert.Equal(t, "sess_1", event.Payload.Payment.Entity.Notes["session_id"])
}
