package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/infrastructure/config"
)

func TestNewFromConfig(t *testing.T) {
	t.Run("unconfigured yields noop", func(t *testing.T) {
		n := NewFromConfig(config.EmailConfig{}, zap.NewNop())
		_, ok := n.(NoopNotifier)
		assert.True(t, ok)
	})

	t.Run("configured yields smtp notifier", func(t *testing.T) {
		n := NewFromConfig(config.EmailConfig{Host: "smtp.example.com", Port: 587}, zap.NewNop())
		_, ok := n.(*SMTPNotifier)
		assert.True(t, ok)
	})
}

func TestSMTPNotifier(t *testing.T) {
	n := NewSMTPNotifier(config.EmailConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"}, zap.NewNop())

	t.Run("no recipients is a no-op", func(t *testing.T) {
		assert.NoError(t, n.Send(context.Background(), nil, "subject", "body"))
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := n.Send(ctx, []string{"admin@example.com"}, "subject", "body")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNoopNotifier(t *testing.T) {
	assert.NoError(t, NoopNotifier{}.Send(context.Background(), []string{"a@b.c"}, "s", "b"))
}
