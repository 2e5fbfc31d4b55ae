package checkoutControllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callbackRouter(svc *checkoutControllers.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/payment/callback", func(c *gin.Context) {
		c.Set("session_id", "sess_1")
		c.Next()
	}, checkoutControllers.PaymentCallbackHandler(svc))
	return r
}

func TestPaymentCallbackWithoutPaymentID(t *testing.T) {
	orders := newFakeOrderStore()
	svc := newService(
		&fakeCartStore{items: testItems()},
		&fakeSessionStore{delivery: testDelivery()},
		orders,
		&fakeGateway{},
	)
	r := callbackRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/callback?order_id=order_123", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	saved := orders.saved["order_123"]
	require.NotNil(t, saved)
	assert.Nil(t, saved.PaymentID)
	assert.Equal(t, "payment_link", saved.PaymentMethod)
}

func TestPaymentCallbackPrefersGatewayParams(t *testing.T) {
	orders := newFakeOrderStore()
	svc := newService(
		&fakeCartStore{items: testItems()},
		&fakeSessionStore{delivery: testDelivery()},
		orders,
		&fakeGateway{},
	)
	r := callbackRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/payment/callback?razorpay_payment_id=pay_9&razorpay_order_id=order_9&payment_id=ignored&order_id=ignored", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	saved := orders.saved["order_9"]
	require.NotNil(t, saved)
	require.NotNil(t, saved.PaymentID)
	assert.Equal(t, "pay_9", *saved.PaymentID)
}

func TestPaymentCallbackTerminalFailure(t *testing.T) {
	orders := newFakeOrderStore()
	orders.saveErr = errors.New("store unavailable")
	svc := newService(
		&fakeCartStore{items: testItems()},
		&fakeSessionStore{delivery: testDelivery()},
		orders,
		&fakeGateway{},
	)
	r := callbackRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/callback?order_id=order_123", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "contact support")
}
