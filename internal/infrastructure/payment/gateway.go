package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/infrastructure/config"
)

const razorpayOrdersURL = "https://api.razorpay.com/v1/orders"

// Common errors
var (
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	ErrGatewayRejected   = errors.New("payment gateway rejected the order")
	ErrNotConfigured     = errors.New("payment gateway credentials not configured")
)

// Order is a gateway order handed to the client-side checkout
type Order struct {
	OrderID  string          `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	KeyID    string          `json:"key_id"`
	// Mock is set when the gateway has no credentials and the order was
	// fabricated locally.
	Mock bool `json:"mock"`
}

// Gateway creates checkout orders and verifies payment callbacks
type Gateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// RazorpayGateway implements Gateway against the Razorpay orders API.
// Without credentials it fabricates mock orders so the flow stays testable;
// verification is then only bypassed when sandbox_skip_verify is set.
type RazorpayGateway struct {
	cfg        config.PaymentConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRazorpayGateway creates a new gateway client
func NewRazorpayGateway(cfg config.PaymentConfig, logger *zap.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("payment"),
	}
}

// Configured reports whether real gateway credentials are present
func (g *RazorpayGateway) Configured() bool {
	return g.cfg.KeyID != "" && g.cfg.KeySecret != ""
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder creates a checkout order for the given amount
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string) (*Order, error) {
	if !g.Configured() {
		order := &Order{
			OrderID:  "order_mock_" + uuid.New().String(),
			Amount:   amount,
			Currency: g.cfg.Currency,
			Mock:     true,
		}
		g.logger.Warn("payment gateway not configured, issuing mock order",
			zap.String("order_id", order.OrderID))
		return order, nil
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency: g.cfg.Currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("payment: failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, razorpayOrdersURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment: failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment: order request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("payment: failed to read order response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		g.logger.Error("order creation rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, ErrGatewayRejected
	}

	var orderResp createOrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, fmt.Errorf("payment: failed to decode order response: %w", err)
	}

	return &Order{
		OrderID:  orderResp.ID,
		Amount:   amount,
		Currency: orderResp.Currency,
		KeyID:    g.cfg.KeyID,
	}, nil
}

// VerifySignature checks the checkout callback signature: an HMAC-SHA256
// of "orderID|paymentID" keyed with the API secret, hex encoded.
// Without a secret there is nothing to verify against, so verification
// refuses outright rather than keying the HMAC with an empty string a
// caller could forge.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	if g.cfg.SandboxSkipVerify {
		g.logger.Warn("sandbox mode: skipping payment signature verification",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID))
		return nil
	}

	if g.cfg.KeySecret == "" {
		g.logger.Error("signature verification attempted without gateway credentials",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID))
		return ErrNotConfigured
	}

	mac := hmac.New(sha256.New, []byte(g.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

var _ Gateway = (*RazorpayGateway)(nil)
