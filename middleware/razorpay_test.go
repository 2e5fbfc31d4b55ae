package middleware_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dhanasriganesh/powder/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func webhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payment/webhook", middleware.RazorpayWebhookAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayWebhookAuthValidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "live")

	body := `{"event":"payment.captured"}`
	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewBufferString(body))
	req.Header.Set("X-Razorpay-Signature", sign("whsec", body))
	w := httptest.NewRecorder()

	webhookRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRazorpayWebhookAuthInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "live")

	body := `{"event":"payment.captured"}`
	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewBufferString(body))
	req.Header.Set("X-Razorpay-Signature", "deadbeef")
	w := httptest.NewRecorder()

	webhookRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRazorpayWebhookAuthMissingSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "live")

	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()

	webhookRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRazorpayWebhookAuthSandboxSkips(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "sandbox")

	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()

	webhookRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
