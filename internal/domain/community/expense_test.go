package community

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	societyID := uuid.New()
	adminID := uuid.New()

	t.Run("successful creation", func(t *testing.T) {
		e, err := NewExpense(societyID, adminID, "Security", decimal.NewFromInt(15000), "Guard salary", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "Security", e.Category)
		assert.True(t, e.Amount.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("non-positive amount fails", func(t *testing.T) {
		_, err := NewExpense(societyID, adminID, "Security", decimal.Zero, "", time.Now())
		assert.Error(t, err)
	})

	t.Run("zero incurred time defaults to now", func(t *testing.T) {
		e, err := NewExpense(societyID, adminID, "Water", decimal.NewFromInt(500), "", time.Time{})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), e.IncurredAt, time.Second)
	})
}

func TestMonthRange(t *testing.T) {
	t.Run("resolves a calendar month", func(t *testing.T) {
		start, end, err := MonthRange("February 2026")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("rejects free-text labels", func(t *testing.T) {
		_, _, err := MonthRange("Water Bill February 2026")
		assert.Error(t, err)
	})
}
