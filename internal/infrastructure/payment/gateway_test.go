package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/infrastructure/config"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-key-secret"
	gw := NewRazorpayGateway(config.PaymentConfig{
		KeyID:     "rzp_test_key",
		KeySecret: secret,
		Currency:  "INR",
	}, zap.NewNop())

	t.Run("valid signature passes", func(t *testing.T) {
		sig := signPayload(secret, "order_123", "pay_456")
		assert.NoError(t, gw.VerifySignature("order_123", "pay_456", sig))
	})

	t.Run("tampered payment id fails", func(t *testing.T) {
		sig := signPayload(secret, "order_123", "pay_456")
		err := gw.VerifySignature("order_123", "pay_789", sig)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		sig := signPayload("other-secret", "order_123", "pay_456")
		err := gw.VerifySignature("order_123", "pay_456", sig)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("empty signature fails", func(t *testing.T) {
		err := gw.VerifySignature("order_123", "pay_456", "")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})
}

func TestVerifySignatureSandboxBypass(t *testing.T) {
	t.Run("bypass requires explicit config", func(t *testing.T) {
		gw := NewRazorpayGateway(config.PaymentConfig{
			SandboxSkipVerify: true,
			Currency:          "INR",
		}, zap.NewNop())
		assert.NoError(t, gw.VerifySignature("order_123", "pay_456", "garbage"))
	})

	t.Run("unconfigured gateway refuses to verify", func(t *testing.T) {
		gw := NewRazorpayGateway(config.PaymentConfig{Currency: "INR"}, zap.NewNop())
		err := gw.VerifySignature("order_123", "pay_456", "garbage")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("signature forged with the empty key does not pass", func(t *testing.T) {
		gw := NewRazorpayGateway(config.PaymentConfig{Currency: "INR"}, zap.NewNop())
		forged := signPayload("", "order_forged", "pay_forged")
		err := gw.VerifySignature("order_forged", "pay_forged", forged)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestCreateOrderMock(t *testing.T) {
	gw := NewRazorpayGateway(config.PaymentConfig{Currency: "INR"}, zap.NewNop())
	require.False(t, gw.Configured())

	order, err := gw.CreateOrder(context.Background(), decimal.NewFromInt(1500), "bill-1")
	require.NoError(t, err)
	assert.True(t, order.Mock)
	assert.Contains(t, order.OrderID, "order_mock_")
	assert.Equal(t, "INR", order.Currency)
	assert.True(t, order.Amount.Equal(decimal.NewFromInt(1500)))
}
