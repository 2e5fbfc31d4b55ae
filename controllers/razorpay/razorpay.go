package razorpayControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
)

// orderResponse represents the Razorpay Orders API response
type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// Client talks to the Razorpay Orders API. It implements the checkout
// Gateway interface.
type Client struct {
	keyID          string
	keySecret      string
	apiURL         string
	paymentPageURL string
	testMode       bool
	httpClient     *http.Client
}

// NewClientFromEnv builds the client from RAZORPAY_* environment variables.
func NewClientFromEnv() *Client {
	apiURL := os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1"
	}

	mode := strings.ToLower(os.Getenv("RAZORPAY_MODE"))

	return &Client{
		keyID:          os.Getenv("RAZORPAY_KEY_ID"),
		keySecret:      os.Getenv("RAZORPAY_KEY_SECRET"),
		apiURL:         apiURL,
		paymentPageURL: os.Getenv("RAZORPAY_PAYMENT_PAGE_URL"),
		testMode:       mode == "sandbox" || mode == "dev",
		httpClient:     &http.Client{},
	}
}

func (cl *Client) KeyID() string {
	return cl.keyID
}

// PaymentPageURL is the hosted checkout page base URL, empty when not configured.
func (cl *Client) PaymentPageURL() string {
	return cl.paymentPageURL
}

// CreateCheckout registers an order with Razorpay and returns its reference.
func (cl *Client) CreateCheckout(req checkoutControllers.CheckoutRequest) (*checkoutControllers.CheckoutIntent, error) {
	if cl.keyID == "" || cl.keySecret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}

	payload := map[string]interface{}{
		"amount":   req.AmountPaise,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    req.Notes,
	}

	jsonData, _ := json.Marshal(payload)
	fmt.Println("Razorpay order payload:", string(jsonData)) // debug log

	httpReq, _ := http.NewRequest("POST", cl.apiURL+"/orders", bytes.NewBuffer(jsonData))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(cl.keyID, cl.keySecret)

	resp, err := cl.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var orderResp orderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return nil, fmt.Errorf("failed to parse Razorpay response: %v", err)
	}

	if orderResp.Error != nil {
		return nil, fmt.Errorf("razorpay error: %s", orderResp.Error.Description)
	}

	if orderResp.ID == "" {
		return nil, fmt.Errorf("razorpay returned empty order id")
	}

	return &checkoutControllers.CheckoutIntent{OrderRef: orderResp.ID}, nil
}

// WebhookEvent is the subset of the Razorpay webhook payload the server consumes.
type WebhookEvent struct {
	Event   string `json:"event"` // e.g. "payment.captured"
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string            `json:"id"`
				OrderID string            `json:"order_id"`
				Notes   map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}
