// Package gateway talks to the payment provider. Razorpay hosts the
// actual charge; this client only creates gateway orders and verifies
// the signatures it sends back.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/crypt"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/http"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/metrics"
)

// ErrMissingCredentials is returned when the gateway key pair is not
// configured. MissingEnvVars lists what to set.
var ErrMissingCredentials = errors.New("gateway: razorpay credentials not configured")

// MissingEnvVars returns the names of unset gateway environment
// variables, for the config-error debug payload.
func MissingEnvVars() []string {
	var missing []string
	if config.RazorpayKeyID() == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if config.RazorpayKeySecret() == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	return missing
}

// GatewayOrder is the provider-side order created before the client
// completes payment.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client is the Razorpay API client.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
}

// NewClient builds a client from configuration. Returns
// ErrMissingCredentials if the key pair is absent.
func NewClient() (*Client, error) {
	keyID, keySecret := config.RazorpayKeyID(), config.RazorpayKeySecret()
	if keyID == "" || keySecret == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   config.RazorpayBaseURL(),
	}, nil
}

// KeyID returns the public key id the browser checkout widget needs.
func (c *Client) KeyID() string { return c.keyID }

// CreateOrder creates a gateway order for amount (in the major currency
// unit, converted to the smallest unit on the wire).
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*GatewayOrder, error) {
	defer metrics.ObserveGateway("create_order", time.Now())

	payload := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := http.Post(c.baseURL+"/orders").
		Basic(c.keyID, c.keySecret).
		Body(payload).
		Timeout(10 * time.Second).
		Retry(3, time.Second).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, fmt.Errorf("gateway: create order: %w", err)
	}
	if err := resp.Throw(); err != nil {
		return nil, fmt.Errorf("gateway: create order rejected: %w", err)
	}

	var order GatewayOrder
	if err := resp.JSON(&order); err != nil {
		return nil, fmt.Errorf("gateway: decode order: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay attaches to
// a completed payment. The signed message is "<order_id>|<payment_id>"
// keyed with the key secret.
func (c *Client) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	message := gatewayOrderID + "|" + paymentID
	return crypt.VerifyHMAC(message, signature, c.keySecret)
}
